package recap

import (
	"testing"

	"github.com/mww/fantasy_recap/model"
)

func TestResolveTeamByPlayer(t *testing.T) {
	in := testLeague()

	tests := []struct {
		playerID string
		expected string
	}{
		{playerID: "p1", expected: "Alpha"},
		{playerID: "p6", expected: "bob"},
		{playerID: "p12", expected: "dave"},
		{playerID: "p99", expected: model.UnknownTeam},
		{playerID: "", expected: model.UnknownTeam},
	}

	for _, tc := range tests {
		t.Run(tc.playerID, func(t *testing.T) {
			if n := ResolveTeamByPlayer(tc.playerID, in.Rosters, in.Users); n != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, n)
			}
		})
	}
}

func TestResolveTeamByPlayer_skipsRosterWithoutOwner(t *testing.T) {
	rosters := []model.Roster{
		{RosterID: 1, OwnerID: "gone", Players: []string{"p1"}},
		{RosterID: 2, OwnerID: "u2", Players: []string{"p1"}},
	}
	users := []model.User{{UserID: "u2", DisplayName: "bob"}}

	if n := ResolveTeamByPlayer("p1", rosters, users); n != "bob" {
		t.Errorf("expected the first roster with a known owner, got %s", n)
	}
	if n := ResolveTeamByPlayer("p1", rosters[:1], users); n != model.UnknownTeam {
		t.Errorf("expected %s, got %s", model.UnknownTeam, n)
	}
}

func TestResolveTeamByRoster(t *testing.T) {
	in := testLeague()
	in.Rosters = append(in.Rosters, model.Roster{RosterID: 5}) // orphaned roster

	tests := []struct {
		rosterID int
		expected string
	}{
		{rosterID: 1, expected: "Alpha"},
		{rosterID: 2, expected: "bob"},
		{rosterID: 5, expected: model.UnknownTeam},
		{rosterID: 42, expected: model.UnknownTeam},
	}

	for _, tc := range tests {
		if n := ResolveTeamByRoster(tc.rosterID, in.Rosters, in.Users); n != tc.expected {
			t.Errorf("roster %d: expected %s, got %s", tc.rosterID, tc.expected, n)
		}
	}
}

func TestDirectory_nilInputs(t *testing.T) {
	d := NewDirectory(nil, nil)
	if _, found := d.TeamForRoster(1); found {
		t.Errorf("empty directory should not resolve rosters")
	}
	if _, found := d.TeamForPlayer("p1"); found {
		t.Errorf("empty directory should not resolve players")
	}
	if n := d.RosterTeam(1); n != model.UnknownTeam {
		t.Errorf("expected %s, got %s", model.UnknownTeam, n)
	}
}
