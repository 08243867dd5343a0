package recap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mww/fantasy_recap/model"
)

// NotAvailable is shown in place of a value that could not be computed.
const NotAvailable = "N/A"

// Render formats a report as the multi-line text recap. Lines are always in
// the same order and a missing value is shown as a placeholder.
func Render(r *Report) string {
	if r == nil {
		r = &Report{}
	}
	var b strings.Builder

	fmt.Fprintf(&b, "The highest scoring team of the week: %s with %s points\n",
		teamName(r.HighestScoringTeam.Team), number(r.HighestScoringTeam.Points, r.HighestScoringTeam.Found))

	b.WriteString("Standings; Top 3 Teams:\n")
	for i := 0; i < 3; i++ {
		if i < len(r.TopTeams) {
			t := r.TopTeams[i]
			fmt.Fprintf(&b, "  %d. %s - %s points (%dW-%dL)\n", i+1, teamName(t.TeamName), formatFloat(t.PointsFor), t.Wins, t.Losses)
		} else {
			fmt.Fprintf(&b, "  %d. %s - %s\n", i+1, model.UnknownTeam, NotAvailable)
		}
	}

	writePlayer(&b, "Highest scoring player of the week", r.HighestScoringPlayer)
	writePlayer(&b, "Lowest scoring player of the week that started", r.LowestScoringStarter)
	writePlayer(&b, "Highest scoring benched player of the week", r.HighestScoringBenchedPlayer)
	writeMatch(&b, "Biggest blowout match of the week", r.BiggestBlowout)
	writeMatch(&b, "Closest match of the week", r.ClosestMatch)

	fmt.Fprintf(&b, "Team on the hottest streak: %s with a %s game win streak\n",
		teamName(r.HottestStreak.Team), integer(r.HottestStreak.Length, r.HottestStreak.Found))
	fmt.Fprintf(&b, "Team with the most moves: %s with %s moves",
		teamName(r.MostMoves.Team), integer(r.MostMoves.Moves, r.MostMoves.Found))

	return b.String()
}

func writePlayer(b *strings.Builder, label string, p PlayerResult) {
	name := p.Player
	if !p.Found || name == "" {
		name = model.UnknownPlayer
	}
	fmt.Fprintf(b, "%s: %s with %s points (Team: %s)\n", label, name, playerPoints(p), teamName(p.Team))
}

func writeMatch(b *strings.Builder, label string, m MatchResult) {
	if !m.Found {
		fmt.Fprintf(b, "%s: %s vs %s (Point Differential: %s)\n", label, model.UnknownTeam, model.UnknownTeam, NotAvailable)
		return
	}
	fmt.Fprintf(b, "%s: %s (%s) vs %s (%s) (Point Differential: %s)\n", label,
		teamName(m.Winner.TeamName), formatFloat(m.Winner.Points),
		teamName(m.Loser.TeamName), formatFloat(m.Loser.Points),
		formatFloat(m.Margin))
}

func teamName(n string) string {
	if n == "" {
		return model.UnknownTeam
	}
	return n
}

// Player points are shown as the platform reported them, not rounded.
func playerPoints(p PlayerResult) string {
	if !p.Found {
		return NotAvailable
	}
	return strconv.FormatFloat(p.Points, 'f', -1, 64)
}

func number(v float64, found bool) string {
	if !found {
		return NotAvailable
	}
	return formatFloat(Round2(v))
}

func integer(v int, found bool) string {
	if !found {
		return NotAvailable
	}
	return strconv.Itoa(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
