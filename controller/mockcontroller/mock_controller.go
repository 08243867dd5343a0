package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/mww/fantasy_recap/controller"
	"github.com/mww/fantasy_recap/recap"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) WeeklySummary(ctx context.Context, platform, leagueID string) (*recap.Report, error) {
	args := c.Called(ctx, platform, leagueID)

	var r *recap.Report
	if args.Get(0) != nil {
		r = args.Get(0).(*recap.Report)
	}

	return r, args.Error(1)
}

func (c *C) SummaryForWeek(ctx context.Context, platform, leagueID string, week int) (*recap.Report, error) {
	args := c.Called(ctx, platform, leagueID, week)

	var r *recap.Report
	if args.Get(0) != nil {
		r = args.Get(0).(*recap.Report)
	}

	return r, args.Error(1)
}

func (c *C) ResolveWeek(season string, date time.Time) (int, bool, error) {
	args := c.Called(season, date)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (c *C) ReportingWeek() (int, bool) {
	args := c.Called()
	return args.Int(0), args.Bool(1)
}

func (c *C) ReportWindow() controller.WindowStatus {
	args := c.Called()
	return args.Get(0).(controller.WindowStatus)
}

func (c *C) RefreshPlayerCatalog(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicCatalogRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
	wg.Done()
}
