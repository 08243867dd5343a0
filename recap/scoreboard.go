package recap

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/mww/fantasy_recap/model"
)

var ErrMissingMatchupID = errors.New("matchup record has no matchup id")

// BuildScoreboard groups the matchup records for a week into games. Records
// without a matchup id are skipped with a diagnostic, unless
// opts.StrictMatchupIDs is set in which case ErrMissingMatchupID is returned.
func BuildScoreboard(matchups []model.Matchup, dir *Directory, opts Options) (model.Scoreboard, []Diagnostic, error) {
	var diags []Diagnostic
	sb := make(model.Scoreboard)

	for _, m := range matchups {
		if m.MatchupID == 0 {
			if opts.StrictMatchupIDs {
				return nil, nil, fmt.Errorf("roster %d: %w", m.RosterID, ErrMissingMatchupID)
			}
			diags = append(diags, malformed("scoreboard", m.RosterID, 0, "roster %d has no matchup id", m.RosterID))
			continue
		}
		sb[m.MatchupID] = append(sb[m.MatchupID], model.TeamScore{
			TeamName: dir.RosterTeam(m.RosterID),
			Points:   m.Points,
		})
	}

	for id := range sb {
		sort.SliceStable(sb[id], func(i, j int) bool {
			return sb[id][i].Points > sb[id][j].Points
		})
	}

	return sb, diags, nil
}

// matchupIDs returns the ids of the scoreboard in ascending order, which is the
// order all metrics visit the games in.
func matchupIDs(sb model.Scoreboard) []int {
	ids := make([]int, 0, len(sb))
	for id := range sb {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
