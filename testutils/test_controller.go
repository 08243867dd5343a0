package testutils

import (
	"strings"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/fantasy_recap/calendar"
)

// TestSeason is the season in TestSeasons. Week 1 starts Tuesday 2023-09-05.
const TestSeason = "2023"

const testSeasonsYAML = `
timezone: America/New_York
seasons:
  "2023":
    policy: descending-inclusive
    end: "2023-10-03"
    weeks:
      - {start: "2023-09-05", week: 1}
      - {start: "2023-09-12", week: 2}
      - {start: "2023-09-19", week: 3}
      - {start: "2023-09-26", week: 4}
`

// TestController has everything needed to create a controller that talks to
// fake services.
type TestController struct {
	Clock       *clock.Mock
	Seasons     calendar.Seasons
	fakeSleeper *FakeSleeperServer
}

func (c *TestController) Close() {
	c.fakeSleeper.Close()
}

func (c *TestController) SleeperURL() string {
	return c.fakeSleeper.URL()
}

// NewTestController creates the fakes with the clock set to now.
func NewTestController(now time.Time) *TestController {
	seasons, err := calendar.LoadSeasons(strings.NewReader(testSeasonsYAML))
	if err != nil {
		panic(err)
	}

	clock := clock.NewMock()
	clock.Set(now)

	return &TestController{
		Clock:       clock,
		Seasons:     seasons,
		fakeSleeper: NewFakeSleeperServer(),
	}
}

// Eastern returns the time in the America/New_York time zone.
func Eastern(year int, month time.Month, day, hour, min int) time.Time {
	loc, err := time.LoadLocation(calendar.EasternTimeZone)
	if err != nil {
		panic(err)
	}
	return time.Date(year, month, day, hour, min, 0, 0, loc)
}
