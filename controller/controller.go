package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/fantasy_recap/cache"
	"github.com/mww/fantasy_recap/calendar"
	"github.com/mww/fantasy_recap/metrics"
	"github.com/mww/fantasy_recap/model"
	"github.com/mww/fantasy_recap/recap"
	"github.com/mww/fantasy_recap/sleeper"
)

var (
	ErrReportWindowClosed  = errors.New("weekly summaries are only published Tuesday morning through Thursday evening")
	ErrNoCompletedWeek     = errors.New("no week of the season has been completed")
	ErrUnsupportedPlatform = errors.New("platform is not supported")
	ErrUnknownSeason       = errors.New("season is not configured")
	ErrInvalidWeek         = errors.New("week must be 1 or greater")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// WeeklySummary builds the summary for the most recently completed week of
	// the configured season. When the report window is enforced it returns
	// ErrReportWindowClosed outside of the window.
	WeeklySummary(ctx context.Context, platform, leagueID string) (*recap.Report, error)
	// SummaryForWeek builds the summary for a specific week, regardless of the
	// report window.
	SummaryForWeek(ctx context.Context, platform, leagueID string, week int) (*recap.Report, error)

	// ResolveWeek returns the week of the season the date falls in. The bool is
	// false when the date is outside of the season.
	ResolveWeek(season string, date time.Time) (int, bool, error)
	ReportingWeek() (int, bool)
	ReportWindow() WindowStatus

	RefreshPlayerCatalog(ctx context.Context) error
	RunPeriodicCatalogRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type WindowStatus struct {
	Open bool      `json:"open"`
	Day  string    `json:"day"`
	Now  time.Time `json:"now"`
}

type Config struct {
	// Season is the season in the seasons table used to find the current week.
	Season              string
	EnforceReportWindow bool
	StrictMatchupIDs    bool
}

type controller struct {
	clock   clock.Clock
	sleeper sleeper.Client
	seasons calendar.Seasons
	season  *calendar.Calendar
	window  *calendar.ReportWindow
	cache   cache.Cache
	metrics *metrics.Metrics
	cfg     Config

	catalogMu       sync.Mutex
	catalog         model.PlayerCatalog
	catalogLoadedAt time.Time
}

func New(clock clock.Clock, sleeper sleeper.Client, seasons calendar.Seasons, cache cache.Cache, metrics *metrics.Metrics, cfg Config) (C, error) {
	season, err := seasons.For(cfg.Season)
	if err != nil {
		return nil, fmt.Errorf("error finding the calendar for season %s: %w", cfg.Season, err)
	}

	window, err := calendar.NewReportWindow()
	if err != nil {
		return nil, err
	}

	c := &controller{
		clock:   clock,
		sleeper: sleeper,
		seasons: seasons,
		season:  season,
		window:  window,
		cache:   cache,
		metrics: metrics,
		cfg:     cfg,
	}
	return c, nil
}

func (c *controller) ResolveWeek(season string, date time.Time) (int, bool, error) {
	cal, ok := c.seasons[season]
	if !ok {
		return 0, false, fmt.Errorf("%w: %s (configured: %s)", ErrUnknownSeason, season, strings.Join(c.seasons.Names(), ", "))
	}
	week, ok := cal.ResolveWeek(date)
	return week, ok, nil
}

func (c *controller) ReportingWeek() (int, bool) {
	return c.season.ReportingWeek(c.clock.Now())
}

func (c *controller) ReportWindow() WindowStatus {
	now := c.clock.Now().In(c.window.Location())
	open, day := c.window.IsOpen(now)
	return WindowStatus{Open: open, Day: day, Now: now}
}

// When we need to make calls that are specific to a platform, grab a platform
// adapter and it will do it. This is internal to the controller package.
type platformAdapter interface {
	getUsers(ctx context.Context, leagueID string) ([]model.User, error)
	getRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	getMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error)
	getPlayerCatalog(ctx context.Context) (model.PlayerCatalog, error)
}

func getPlatformAdapter(platform string, c *controller) platformAdapter {
	switch platform {
	case model.PlatformSleeper:
		return &sleeperAdapter{c}
	default:
		return &nilPlatformAdapter{err: fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platform)}
	}
}

// nilPlatformAdapter exists so that we can always return an adapter and simply the usage.
// It eliminates the need for an extra error check.
type nilPlatformAdapter struct {
	err error
}

func (a *nilPlatformAdapter) getUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	return nil, a.err
}

func (a *nilPlatformAdapter) getRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	return nil, a.err
}

func (a *nilPlatformAdapter) getMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	return nil, a.err
}

func (a *nilPlatformAdapter) getPlayerCatalog(ctx context.Context) (model.PlayerCatalog, error) {
	return nil, a.err
}
