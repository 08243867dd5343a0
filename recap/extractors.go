package recap

import (
	"math"
	"slices"

	"github.com/mww/fantasy_recap/model"
)

// Every metric keeps the first record it sees when two records tie, so the
// order of the input decides ties. Scoreboards are visited in ascending
// matchup id order, see playerOrder for the order of players in a matchup.

// emptySlot is the id the platform uses in a lineup for a starting spot that
// was left empty.
const emptySlot = "0"

type TeamResult struct {
	Team   string  `json:"team"`
	Points float64 `json:"points"`
	Found  bool    `json:"found"`
}

type PlayerResult struct {
	PlayerID string         `json:"player_id,omitempty"`
	Player   string         `json:"player,omitempty"`
	Position model.Position `json:"position,omitempty"`
	NFLTeam  string         `json:"nfl_team,omitempty"`
	Points   float64        `json:"points"`
	Team     string         `json:"team"`
	Found    bool           `json:"found"`
}

type MatchResult struct {
	Winner model.TeamScore `json:"winner"`
	Loser  model.TeamScore `json:"loser"`
	Margin float64         `json:"margin"`
	Found  bool            `json:"found"`
}

type MovesResult struct {
	Team  string `json:"team"`
	Moves int    `json:"moves"`
	Found bool   `json:"found"`
}

type StreakResult struct {
	Team   string `json:"team"`
	Length int    `json:"length"`
	Found  bool   `json:"found"`
}

func noTeam() TeamResult {
	return TeamResult{Team: model.UnknownTeam}
}

func noPlayer() PlayerResult {
	return PlayerResult{Team: model.UnknownTeam}
}

// HighestScoringTeam finds the team with the most points in any game.
func HighestScoringTeam(sb model.Scoreboard) TeamResult {
	best := noTeam()
	for _, id := range matchupIDs(sb) {
		for _, t := range sb[id] {
			if !best.Found || t.Points > best.Points {
				best = TeamResult{Team: t.TeamName, Points: t.Points, Found: true}
			}
		}
	}
	return best
}

// HighestScoringPlayer finds the player, starter or not, with the most points.
func HighestScoringPlayer(matchups []model.Matchup, catalog model.PlayerCatalog, dir *Directory) PlayerResult {
	var best candidate
	for i := range matchups {
		m := &matchups[i]
		for _, id := range playerOrder(m) {
			best.offer(id, m.PlayersPoints[id], m.RosterID, higher)
		}
	}
	return best.result(catalog, dir)
}

// LowestScoringStarter finds the starter with the fewest points. Starters
// without a score count as zero points. Matchups without a lineup are skipped.
func LowestScoringStarter(matchups []model.Matchup, catalog model.PlayerCatalog, dir *Directory) (PlayerResult, []Diagnostic) {
	var diags []Diagnostic
	var best candidate
	for i := range matchups {
		m := &matchups[i]
		if len(m.Starters) == 0 {
			diags = append(diags, malformed("lowest_scoring_starter", m.RosterID, m.MatchupID,
				"roster %d has no starters", m.RosterID))
			continue
		}
		for _, id := range m.Starters {
			if id == emptySlot || id == "" {
				continue
			}
			best.offer(id, m.PlayersPoints[id], m.RosterID, lower)
		}
	}
	return best.result(catalog, dir), diags
}

// HighestScoringBenchedPlayer finds the player with the most points that was
// not in their team's starting lineup. Matchups without a lineup are skipped
// since there is no way to tell who was on the bench.
func HighestScoringBenchedPlayer(matchups []model.Matchup, catalog model.PlayerCatalog, dir *Directory) (PlayerResult, []Diagnostic) {
	var diags []Diagnostic
	var best candidate
	for i := range matchups {
		m := &matchups[i]
		if m.Starters == nil {
			diags = append(diags, malformed("highest_scoring_benched_player", m.RosterID, m.MatchupID,
				"roster %d has no starters", m.RosterID))
			continue
		}
		for _, id := range playerOrder(m) {
			if m.IsStarter(id) {
				continue
			}
			best.offer(id, m.PlayersPoints[id], m.RosterID, higher)
		}
	}
	return best.result(catalog, dir), diags
}

// BiggestBlowout finds the game with the largest margin of victory.
func BiggestBlowout(sb model.Scoreboard) (MatchResult, []Diagnostic) {
	return pickMatch(sb, "biggest_blowout", higher)
}

// ClosestMatch finds the game with the smallest margin of victory.
func ClosestMatch(sb model.Scoreboard) (MatchResult, []Diagnostic) {
	return pickMatch(sb, "closest_match", lower)
}

func pickMatch(sb model.Scoreboard, metric string, better func(a, b float64) bool) (MatchResult, []Diagnostic) {
	var diags []Diagnostic
	best := MatchResult{}
	for _, id := range matchupIDs(sb) {
		teams := sb[id]
		if len(teams) < 2 {
			diags = append(diags, malformed(metric, 0, id, "matchup %d has %d team(s)", id, len(teams)))
			continue
		}
		margin := math.Abs(teams[0].Points - teams[1].Points)
		if !best.Found || better(margin, best.Margin) {
			best = MatchResult{Winner: teams[0], Loser: teams[1], Margin: margin, Found: true}
		}
	}
	if !best.Found {
		best.Winner.TeamName = model.UnknownTeam
		best.Loser.TeamName = model.UnknownTeam
	}
	return best, diags
}

// MostMoves finds the team that has made the most roster moves this season.
func MostMoves(rosters []model.Roster, dir *Directory) MovesResult {
	best := MovesResult{Team: model.UnknownTeam}
	for _, r := range rosters {
		if !best.Found || r.Settings.TotalMoves > best.Moves {
			best = MovesResult{Team: dir.RosterTeam(r.RosterID), Moves: r.Settings.TotalMoves, Found: true}
		}
	}
	return best
}

// HottestStreak finds the team with the longest active winning streak. Teams
// on a losing streak, or with no streak, count as zero.
func HottestStreak(rosters []model.Roster, dir *Directory) (StreakResult, []Diagnostic) {
	var diags []Diagnostic
	best := StreakResult{Team: model.UnknownTeam}
	for _, r := range rosters {
		n, err := ParseStreak(r.Metadata.Streak)
		if err != nil {
			diags = append(diags, malformed("hottest_streak", r.RosterID, 0, "%v", err))
		}
		if !best.Found || n > best.Length {
			best = StreakResult{Team: dir.RosterTeam(r.RosterID), Length: n, Found: true}
		}
	}
	return best, diags
}

func higher(a, b float64) bool { return a > b }
func lower(a, b float64) bool  { return a < b }

// candidate tracks the best player seen so far by one of the player metrics.
type candidate struct {
	playerID string
	points   float64
	rosterID int
	found    bool
}

func (c *candidate) offer(playerID string, points float64, rosterID int, better func(a, b float64) bool) {
	if !c.found || better(points, c.points) {
		*c = candidate{playerID: playerID, points: points, rosterID: rosterID, found: true}
	}
}

// result resolves the winning player. A winner that is missing from the
// catalog yields no result at all, not a result with a placeholder name.
func (c *candidate) result(catalog model.PlayerCatalog, dir *Directory) PlayerResult {
	if !c.found {
		return noPlayer()
	}
	name, found := catalog.Name(c.playerID)
	if !found {
		return noPlayer()
	}
	p := catalog[c.playerID]
	return PlayerResult{
		PlayerID: c.playerID,
		Player:   name,
		Position: p.Position,
		NFLTeam:  p.Team,
		Points:   c.points,
		Team:     dir.RosterTeam(c.rosterID),
		Found:    true,
	}
}

// playerOrder returns the ids of the players that scored in a matchup. Players
// are listed in roster order, followed by any other scoring ids sorted so the
// order never depends on map iteration.
func playerOrder(m *model.Matchup) []string {
	ids := make([]string, 0, len(m.PlayersPoints))
	seen := make(map[string]bool, len(m.PlayersPoints))
	for _, id := range m.Players {
		if _, scored := m.PlayersPoints[id]; scored && !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}

	var rest []string
	for id := range m.PlayersPoints {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	slices.Sort(rest)
	return append(ids, rest...)
}
