// Package calendar maps wall-clock dates onto the weeks of a fantasy season.
package calendar

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrInvalidCalendar = errors.New("invalid calendar")

// Policy selects how a date between two week start dates is resolved.
type Policy string

const (
	// DescendingInclusive picks the week with the greatest start date that is on
	// or before the date. Dates before the first week are absent.
	DescendingInclusive Policy = "descending-inclusive"
	// AscendingExclusive finds the first start date strictly after the date and
	// uses the week before it. Dates before the first week resolve to week 1.
	AscendingExclusive Policy = "ascending-exclusive"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", DescendingInclusive:
		return DescendingInclusive, nil
	case AscendingExclusive:
		return AscendingExclusive, nil
	default:
		return "", fmt.Errorf("%w: unknown week policy %q", ErrInvalidCalendar, s)
	}
}

type Entry struct {
	Start time.Time
	Week  int
}

type Calendar struct {
	entries []Entry // sorted by Start, ascending
	policy  Policy
	end     time.Time // last day that resolves to a week
	loc     *time.Location
}

type Option func(*Calendar)

// WithEnd sets the last day of the season. Dates after it do not resolve to
// any week. Without it the season ends six days after the last week starts.
func WithEnd(end time.Time) Option {
	return func(c *Calendar) {
		c.end = end
	}
}

// WithLocation sets the time zone used to decide which day a time falls on.
// Defaults to the location of the first entry.
func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) {
		c.loc = loc
	}
}

// New validates the entries and builds a Calendar. Entries must be in strictly
// increasing date order and every week number must be positive.
func New(entries []Entry, policy Policy, opts ...Option) (*Calendar, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no weeks", ErrInvalidCalendar)
	}
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}
	if policy == "" {
		policy = DescendingInclusive
	}

	c := &Calendar{
		entries: slices.Clone(entries),
		policy:  policy,
		loc:     entries[0].Start.Location(),
	}
	for _, o := range opts {
		o(c)
	}

	for i, e := range c.entries {
		if e.Week < 1 {
			return nil, fmt.Errorf("%w: week %d starting %s must be positive", ErrInvalidCalendar, e.Week, e.Start.Format(time.DateOnly))
		}
		c.entries[i].Start = c.day(e.Start)
		if i > 0 && !c.entries[i].Start.After(c.entries[i-1].Start) {
			return nil, fmt.Errorf("%w: %s is not after %s", ErrInvalidCalendar,
				e.Start.Format(time.DateOnly), c.entries[i-1].Start.Format(time.DateOnly))
		}
	}

	last := c.entries[len(c.entries)-1].Start
	if c.end.IsZero() {
		c.end = last.AddDate(0, 0, 6)
	} else {
		c.end = c.day(c.end)
		if c.end.Before(last) {
			return nil, fmt.Errorf("%w: season end %s is before the last week", ErrInvalidCalendar, c.end.Format(time.DateOnly))
		}
	}

	return c, nil
}

func (c *Calendar) Policy() Policy {
	return c.policy
}

func (c *Calendar) Entries() []Entry {
	return slices.Clone(c.entries)
}

// ResolveWeek returns the week the date falls in. The bool is false when the
// date is not covered by the calendar.
func (c *Calendar) ResolveWeek(date time.Time) (int, bool) {
	d := c.day(date)
	if d.After(c.end) {
		return 0, false
	}

	switch c.policy {
	case AscendingExclusive:
		return c.resolveAscending(d)
	default:
		return c.resolveDescending(d)
	}
}

func (c *Calendar) resolveDescending(d time.Time) (int, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if !c.entries[i].Start.After(d) {
			return c.entries[i].Week, true
		}
	}
	return 0, false
}

func (c *Calendar) resolveAscending(d time.Time) (int, bool) {
	for i, e := range c.entries {
		if e.Start.After(d) {
			if i == 0 {
				return 1, true
			}
			return c.entries[i-1].Week, true
		}
	}
	return c.entries[len(c.entries)-1].Week, true
}

// ReportingWeek returns the most recently completed week, which is the week
// before the one the date falls in.
func (c *Calendar) ReportingWeek(now time.Time) (int, bool) {
	w, ok := c.ResolveWeek(now)
	if !ok || w-1 < 1 {
		return 0, false
	}
	return w - 1, true
}

func (c *Calendar) day(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}
