package calendar

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Dates in the season file may be written either as 2023-09-05 or 9/5/2023.
var dateFormats = []string{time.DateOnly, "1/2/2006"}

type seasonsFile struct {
	TimeZone string                `yaml:"timezone"`
	Seasons  map[string]seasonFile `yaml:"seasons"`
}

type seasonFile struct {
	Policy string     `yaml:"policy"`
	End    string     `yaml:"end"`
	Weeks  []weekFile `yaml:"weeks"`
}

type weekFile struct {
	Start string `yaml:"start"`
	Week  int    `yaml:"week"`
}

// Seasons holds one calendar per season, keyed by the season year.
type Seasons map[string]*Calendar

func (s Seasons) For(season string) (*Calendar, error) {
	c, found := s[season]
	if !found {
		return nil, fmt.Errorf("no calendar configured for season %s, have %s", season, strings.Join(s.Names(), ", "))
	}
	return c, nil
}

// Names returns the configured seasons in sorted order.
func (s Seasons) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func LoadSeasonsFile(path string) (Seasons, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening seasons file: %w", err)
	}
	defer f.Close()
	return LoadSeasons(f)
}

// LoadSeasons parses and validates a YAML seasons table. Any problem with the
// table is returned as an error wrapping ErrInvalidCalendar.
func LoadSeasons(r io.Reader) (Seasons, error) {
	var parsed seasonsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: error parsing seasons file: %v", ErrInvalidCalendar, err)
	}
	if len(parsed.Seasons) == 0 {
		return nil, fmt.Errorf("%w: no seasons defined", ErrInvalidCalendar)
	}

	tz := parsed.TimeZone
	if tz == "" {
		tz = EasternTimeZone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown time zone %q", ErrInvalidCalendar, tz)
	}

	result := make(Seasons, len(parsed.Seasons))
	for name, sf := range parsed.Seasons {
		c, err := sf.toCalendar(loc)
		if err != nil {
			return nil, fmt.Errorf("season %s: %w", name, err)
		}
		result[name] = c
	}
	return result, nil
}

func (sf *seasonFile) toCalendar(loc *time.Location) (*Calendar, error) {
	policy, err := ParsePolicy(sf.Policy)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(sf.Weeks))
	for _, w := range sf.Weeks {
		d, err := ParseDate(w.Start, loc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Start: d, Week: w.Week})
	}

	opts := []Option{WithLocation(loc)}
	if sf.End != "" {
		end, err := ParseDate(sf.End, loc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithEnd(end))
	}

	return New(entries, policy, opts...)
}

// ParseDate parses a date written as 2023-09-05 or 9/5/2023 in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, f := range dateFormats {
		if d, err := time.ParseInLocation(f, s, loc); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse date %q", ErrInvalidCalendar, s)
}
