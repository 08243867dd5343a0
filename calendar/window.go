package calendar

import (
	"fmt"
	"time"
	_ "time/tzdata" // the window must work on hosts without zoneinfo
)

const EasternTimeZone = "America/New_York"

// ReportWindow is the part of the week when recaps for the previous week are
// published: Tuesday from 04:00 through the end of Wednesday, and Thursday
// until 19:00.
type ReportWindow struct {
	loc *time.Location
}

func NewReportWindow() (*ReportWindow, error) {
	loc, err := time.LoadLocation(EasternTimeZone)
	if err != nil {
		return nil, fmt.Errorf("error loading %s time zone: %w", EasternTimeZone, err)
	}
	return &ReportWindow{loc: loc}, nil
}

// IsOpen reports whether recaps may be published at the given time, along with
// the name of the weekday in the window's time zone.
func (w *ReportWindow) IsOpen(now time.Time) (bool, string) {
	local := now.In(w.loc)
	day := local.Weekday()
	hour := local.Hour()

	switch {
	case day == time.Tuesday && hour >= 4:
		return true, day.String()
	case day == time.Wednesday:
		return true, day.String()
	case day == time.Thursday && hour < 19:
		return true, day.String()
	default:
		return false, day.String()
	}
}

func (w *ReportWindow) Location() *time.Location {
	return w.loc
}
