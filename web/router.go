package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/fantasy_recap/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, metrics http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Group(func(r chi.Router) {
		// Summaries hit the platform several times and the player catalog is
		// large, so give them longer than the default.
		r.Use(middleware.Timeout(60 * time.Second))

		r.Route("/leagues/{leagueID}", func(r chi.Router) {
			r.Get("/summary", weeklySummaryHandler(ctrl, render))
			r.Get("/summary.txt", weeklySummaryTextHandler(ctrl, render))
			r.Get("/summary/{week:\\d+}", summaryForWeekHandler(ctrl, render))
		})
	})

	r.Group(func(r chi.Router) {
		// Set a timeout value on the request context (ctx), that will signal
		// through ctx.Done() that the request has timed out and further
		// processing should be stopped.
		r.Use(middleware.Timeout(10 * time.Second))

		r.Get("/", rootHandler(ctrl, render))
		r.Get("/week", weekHandler(ctrl, render))
		r.Get("/window", windowHandler(ctrl, render))
	})

	return r
}
