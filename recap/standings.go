package recap

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mww/fantasy_recap/model"
)

// TopThreeTeams orders the standings by wins, then losses, then points for,
// all descending, and returns the first three. Sorting losses descending means
// that between teams with the same number of wins the one with more losses
// ranks higher. Leagues have come to expect this order so it is kept.
func TopThreeTeams(standings []model.StandingsRow) []model.StandingsRow {
	sorted := slices.Clone(standings)
	slices.SortStableFunc(sorted, func(a, b model.StandingsRow) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		if a.Losses != b.Losses {
			return b.Losses - a.Losses
		}
		switch {
		case a.PointsFor > b.PointsFor:
			return -1
		case a.PointsFor < b.PointsFor:
			return 1
		default:
			return 0
		}
	})
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}
	return sorted
}

// StandingsFromRosters builds a standings table from the season records kept
// on each roster, in roster order.
func StandingsFromRosters(rosters []model.Roster, dir *Directory) []model.StandingsRow {
	rows := make([]model.StandingsRow, 0, len(rosters))
	for _, r := range rosters {
		rows = append(rows, model.StandingsRow{
			TeamName:  dir.RosterTeam(r.RosterID),
			Wins:      r.Settings.Wins,
			Losses:    r.Settings.Losses,
			Ties:      r.Settings.Ties,
			PointsFor: r.Settings.PointsFor,
		})
	}
	return rows
}

// ParseStreak returns the length of a winning streak described by s. Both
// "W3" and "3W" describe a three game winning streak. Losing streaks and empty
// descriptors are zero. An error is returned, along with zero, for a winning
// streak whose length cannot be read.
func ParseStreak(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.Contains(s, "W") {
		return 0, nil
	}

	var count string
	switch {
	case strings.HasPrefix(s, "W"):
		count = s[1:]
	case strings.HasSuffix(s, "W"):
		count = s[:len(s)-1]
	default:
		return 0, fmt.Errorf("unrecognized streak %q", s)
	}

	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("unrecognized streak %q", s)
	}
	return n, nil
}
