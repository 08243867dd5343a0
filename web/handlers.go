package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mww/fantasy_recap/calendar"
	"github.com/mww/fantasy_recap/controller"
	"github.com/mww/fantasy_recap/model"
	"github.com/mww/fantasy_recap/recap"
	"github.com/mww/fantasy_recap/sleeper"
	"github.com/unrolled/render"
)

const rootText = `fantasy recap

GET /leagues/{leagueID}/summary         summary of the last completed week as JSON
GET /leagues/{leagueID}/summary.txt     the same summary as text
GET /leagues/{leagueID}/summary/{week}  summary of a specific week
GET /week?season=2023&date=2023-09-10   week of the season a date falls in
GET /window                             whether summaries are being published
GET /metrics                            prometheus metrics
`

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, rootText)
	}
}

func weeklySummaryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.WeeklySummary(r.Context(), platformParam(r), chi.URLParam(r, "leagueID"))
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, report)
	}
}

func weeklySummaryTextHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.WeeklySummary(r.Context(), platformParam(r), chi.URLParam(r, "leagueID"))
		if err != nil {
			render.Text(w, errorStatus(err), err.Error())
			return
		}
		render.Text(w, http.StatusOK, report.Text)
	}
}

func summaryForWeekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			renderError(w, render, controller.ErrInvalidWeek)
			return
		}

		report, err := ctrl.SummaryForWeek(r.Context(), platformParam(r), chi.URLParam(r, "leagueID"), week)
		if err != nil {
			renderError(w, render, err)
			return
		}

		if r.URL.Query().Get("format") == "text" {
			render.Text(w, http.StatusOK, report.Text)
			return
		}
		render.JSON(w, http.StatusOK, report)
	}
}

type weekResponse struct {
	Season   string `json:"season"`
	Date     string `json:"date"`
	Week     int    `json:"week,omitempty"`
	InSeason bool   `json:"in_season"`
}

func weekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season := r.URL.Query().Get("season")
		if season == "" {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": "season is required"})
			return
		}

		now := ctrl.ReportWindow().Now
		date := now
		if d := r.URL.Query().Get("date"); d != "" {
			var err error
			if date, err = calendar.ParseDate(d, now.Location()); err != nil {
				render.JSON(w, http.StatusBadRequest, map[string]string{"error": "date must be formatted as 2006-01-02 or 9/5/2023"})
				return
			}
		}

		week, ok, err := ctrl.ResolveWeek(season, date)
		if err != nil {
			renderError(w, render, err)
			return
		}

		render.JSON(w, http.StatusOK, weekResponse{
			Season:   season,
			Date:     date.Format(time.DateOnly),
			Week:     week,
			InSeason: ok,
		})
	}
}

type windowResponse struct {
	controller.WindowStatus
	ReportingWeek int `json:"reporting_week,omitempty"`
}

func windowHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := windowResponse{WindowStatus: ctrl.ReportWindow()}
		if week, ok := ctrl.ReportingWeek(); ok {
			resp.ReportingWeek = week
		}
		render.JSON(w, http.StatusOK, resp)
	}
}

// The platform defaults to sleeper, the only one currently supported.
func platformParam(r *http.Request) string {
	if p := r.URL.Query().Get("platform"); p != "" {
		return p
	}
	return model.PlatformSleeper
}

func renderError(w http.ResponseWriter, render *render.Render, err error) {
	render.JSON(w, errorStatus(err), map[string]string{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, controller.ErrReportWindowClosed):
		return http.StatusForbidden
	case errors.Is(err, controller.ErrNoCompletedWeek),
		errors.Is(err, sleeper.ErrLeagueNotFound):
		return http.StatusNotFound
	case errors.Is(err, controller.ErrInvalidWeek),
		errors.Is(err, controller.ErrUnsupportedPlatform),
		errors.Is(err, controller.ErrUnknownSeason):
		return http.StatusBadRequest
	case errors.Is(err, recap.ErrMissingMatchupID):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
