package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/fantasy_recap/cache"
	"github.com/mww/fantasy_recap/calendar"
	"github.com/mww/fantasy_recap/config"
	"github.com/mww/fantasy_recap/controller"
	"github.com/mww/fantasy_recap/metrics"
	"github.com/mww/fantasy_recap/model"
	"github.com/mww/fantasy_recap/recap"
	"github.com/mww/fantasy_recap/sleeper"
	"github.com/spf13/cobra"
)

type options struct {
	seasonsFile string
	season      string
	sleeperURL  string
	playersURL  string
	at          string
	// from $STRICT_MATCHUP_IDS, --strict-matchup-ids also turns it on
	strictMatchupIDs bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "recap",
		Short: "Weekly fantasy football league recaps",
		Long: `recap builds the weekly summary for a sleeper league: the top scoring team
and players, the standings, the biggest blowout and closest game, and which
teams are on a streak or making the most moves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// flags win over the environment
			if opts.seasonsFile == "" {
				opts.seasonsFile = cfg.SeasonsFile
			}
			if opts.season == "" {
				opts.season = cfg.Season
			}
			if opts.sleeperURL == "" {
				opts.sleeperURL = cfg.SleeperURL
			}
			if opts.playersURL == "" {
				opts.playersURL = cfg.PlayersURL
			}
			opts.strictMatchupIDs = cfg.StrictMatchupIDs
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.seasonsFile, "seasons", "", "Path to the season calendars (default $SEASONS_FILE)")
	cmd.PersistentFlags().StringVar(&opts.season, "season", "", "Season to use (default $SEASON)")
	cmd.PersistentFlags().StringVar(&opts.sleeperURL, "sleeper-url", "", "Base URL of the sleeper API (default $SLEEPER_URL)")
	cmd.PersistentFlags().StringVar(&opts.playersURL, "players-url", "", "URL to load the player catalog from (default $PLAYERS_URL)")
	cmd.PersistentFlags().StringVar(&opts.at, "at", "", "Pretend it is this time, formatted as RFC3339")

	cmd.AddCommand(newSummaryCmd(opts), newWeekCmd(opts), newWindowCmd(opts))
	return cmd
}

func newSummaryCmd(opts *options) *cobra.Command {
	var leagueID string
	var week int
	var asJSON, enforceWindow, strict bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the summary for a league",
		Long: `Print the summary for a league. Without --week the most recently completed
week of the season is used.

Example usage:
  recap summary --league 924039165950484480
  recap summary --league 924039165950484480 --week 3 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := opts.controller(controller.Config{
				EnforceReportWindow: enforceWindow,
				StrictMatchupIDs:    strict || opts.strictMatchupIDs,
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			if week == 0 {
				r, err := ctrl.WeeklySummary(ctx, model.PlatformSleeper, leagueID)
				if err != nil {
					return err
				}
				return printReport(cmd, r, asJSON)
			}

			r, err := ctrl.SummaryForWeek(ctx, model.PlatformSleeper, leagueID, week)
			if err != nil {
				return err
			}
			return printReport(cmd, r, asJSON)
		},
	}

	cmd.Flags().StringVar(&leagueID, "league", "", "Sleeper league id")
	cmd.Flags().IntVar(&week, "week", 0, "Week to summarize")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	cmd.Flags().BoolVar(&enforceWindow, "enforce-window", false, "Refuse to summarize outside of the report window")
	cmd.Flags().BoolVar(&strict, "strict-matchup-ids", false, "Fail when a matchup has no matchup id (default $STRICT_MATCHUP_IDS)")
	cmd.MarkFlagRequired("league")
	return cmd
}

func newWeekCmd(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the week of the season a date falls in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := opts.controller(controller.Config{})
			if err != nil {
				return err
			}

			now := ctrl.ReportWindow().Now
			d := now
			if date != "" {
				if d, err = calendar.ParseDate(date, now.Location()); err != nil {
					return err
				}
			}

			week, ok, err := ctrl.ResolveWeek(opts.season, d)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not during the %s season\n", d.Format(time.DateOnly), opts.season)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is in week %d of the %s season\n", d.Format(time.DateOnly), week, opts.season)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date formatted as 2006-01-02 (default today)")
	return cmd
}

func newWindowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Print whether weekly summaries are being published",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := opts.controller(controller.Config{})
			if err != nil {
				return err
			}

			status := ctrl.ReportWindow()
			state := "closed"
			if status.Open {
				state = "open"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The report window is %s (%s %s)\n", state, status.Day, status.Now.Format("15:04 MST"))

			if week, ok := ctrl.ReportingWeek(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Reporting on week %d\n", week)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No week of the %s season has been completed\n", opts.season)
			}
			return nil
		},
	}
}

// controller wires up a controller with an in memory cache, a single command
// never asks for the same summary twice.
func (o *options) controller(cfg controller.Config) (controller.C, error) {
	seasons, err := calendar.LoadSeasonsFile(o.seasonsFile)
	if err != nil {
		return nil, err
	}

	clk, err := o.clock()
	if err != nil {
		return nil, err
	}

	client, err := sleeper.New(o.sleeperURL, o.playersURL)
	if err != nil {
		return nil, err
	}

	cfg.Season = o.season
	return controller.New(clk, client, seasons, cache.NewMemory(clk, cache.DefaultTTL), metrics.New(), cfg)
}

func (o *options) clock() (clock.Clock, error) {
	if o.at == "" {
		return clock.New(), nil
	}

	t, err := time.Parse(time.RFC3339, o.at)
	if err != nil {
		return nil, fmt.Errorf("--at must be formatted as RFC3339: %w", err)
	}
	m := clock.NewMock()
	m.Set(t)
	return m, nil
}

func printReport(cmd *cobra.Command, r *recap.Report, asJSON bool) error {
	if !asJSON {
		fmt.Fprintln(cmd.OutOrStdout(), r.Text)
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
