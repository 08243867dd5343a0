package recap

import (
	"math"

	"github.com/mww/fantasy_recap/model"
)

// Input is everything the platform provides for one week of one league.
type Input struct {
	Week     int
	Users    []model.User
	Rosters  []model.Roster
	Matchups []model.Matchup
	// Standings is optional. When nil the standings are built from the rosters.
	Standings []model.StandingsRow
	Catalog   model.PlayerCatalog
}

type Options struct {
	// StrictMatchupIDs fails the report when a matchup record has no
	// matchup id, instead of skipping the record.
	StrictMatchupIDs bool
}

// Metrics are the raw outputs of each of the metric functions.
type Metrics struct {
	HighestScoringTeam          TeamResult
	TopTeams                    []model.StandingsRow
	HighestScoringPlayer        PlayerResult
	LowestScoringStarter        PlayerResult
	HighestScoringBenchedPlayer PlayerResult
	BiggestBlowout              MatchResult
	ClosestMatch                MatchResult
	MostMoves                   MovesResult
	HottestStreak               StreakResult
}

// Report is the recap for a single week.
type Report struct {
	Week                        int                  `json:"week"`
	HighestScoringTeam          TeamResult           `json:"highest_scoring_team"`
	TopTeams                    []model.StandingsRow `json:"top_teams"`
	HighestScoringPlayer        PlayerResult         `json:"highest_scoring_player"`
	LowestScoringStarter        PlayerResult         `json:"lowest_scoring_starter"`
	HighestScoringBenchedPlayer PlayerResult         `json:"highest_scoring_benched_player"`
	BiggestBlowout              MatchResult          `json:"biggest_blowout"`
	ClosestMatch                MatchResult          `json:"closest_match"`
	MostMoves                   MovesResult          `json:"most_moves"`
	HottestStreak               StreakResult         `json:"hottest_streak"`
	Diagnostics                 []Diagnostic         `json:"diagnostics"`
	Text                        string               `json:"text"`
}

// Generate runs every metric over the input and assembles the report. An
// error is only returned when opts.StrictMatchupIDs rejects the matchups.
func Generate(in Input, opts Options) (*Report, error) {
	dir := NewDirectory(in.Users, in.Rosters)

	sb, diags, err := BuildScoreboard(in.Matchups, dir, opts)
	if err != nil {
		return nil, err
	}

	standings := in.Standings
	if standings == nil {
		standings = StandingsFromRosters(in.Rosters, dir)
	}

	var m Metrics
	var d []Diagnostic
	m.HighestScoringTeam = HighestScoringTeam(sb)
	m.TopTeams = TopThreeTeams(standings)
	m.HighestScoringPlayer = HighestScoringPlayer(in.Matchups, in.Catalog, dir)
	m.LowestScoringStarter, d = LowestScoringStarter(in.Matchups, in.Catalog, dir)
	diags = append(diags, d...)
	m.HighestScoringBenchedPlayer, d = HighestScoringBenchedPlayer(in.Matchups, in.Catalog, dir)
	diags = append(diags, d...)
	m.BiggestBlowout, d = BiggestBlowout(sb)
	diags = append(diags, d...)
	m.ClosestMatch, d = ClosestMatch(sb)
	diags = append(diags, d...)
	m.MostMoves = MostMoves(in.Rosters, dir)
	m.HottestStreak, d = HottestStreak(in.Rosters, dir)
	diags = append(diags, d...)

	return Assemble(in.Week, m, diags), nil
}

// Assemble builds a report from metrics that have already been computed.
// Team totals, standings points and margins are rounded to two decimals.
func Assemble(week int, m Metrics, diags []Diagnostic) *Report {
	r := &Report{
		Week:                        week,
		HighestScoringTeam:          m.HighestScoringTeam,
		TopTeams:                    make([]model.StandingsRow, 0, len(m.TopTeams)),
		HighestScoringPlayer:        m.HighestScoringPlayer,
		LowestScoringStarter:        m.LowestScoringStarter,
		HighestScoringBenchedPlayer: m.HighestScoringBenchedPlayer,
		BiggestBlowout:              roundMatch(m.BiggestBlowout),
		ClosestMatch:                roundMatch(m.ClosestMatch),
		MostMoves:                   m.MostMoves,
		HottestStreak:               m.HottestStreak,
		Diagnostics:                 make([]Diagnostic, 0, len(diags)),
	}
	r.HighestScoringTeam.Points = Round2(r.HighestScoringTeam.Points)
	for _, row := range m.TopTeams {
		row.PointsFor = Round2(row.PointsFor)
		r.TopTeams = append(r.TopTeams, row)
	}
	r.Diagnostics = append(r.Diagnostics, diags...)
	r.Text = Render(r)
	return r
}

func roundMatch(m MatchResult) MatchResult {
	m.Margin = Round2(m.Margin)
	m.Winner.Points = Round2(m.Winner.Points)
	m.Loser.Points = Round2(m.Loser.Points)
	return m
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
