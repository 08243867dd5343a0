package recap

import (
	"github.com/mww/fantasy_recap/model"
)

// testLeague is a four team league in the middle of its season. Roster 1 and
// roster 2 play in matchup 1, roster 3 and roster 4 play in matchup 2.
func testLeague() Input {
	users := []model.User{
		{UserID: "u1", DisplayName: "alice", TeamName: "Alpha"},
		{UserID: "u2", DisplayName: "bob"},
		{UserID: "u3", DisplayName: "carol", TeamName: "Gamma"},
		{UserID: "u4", DisplayName: "dave"},
	}

	rosters := []model.Roster{
		{
			RosterID: 1, OwnerID: "u1", Players: []string{"p1", "p2", "p3"},
			Settings: model.RosterSettings{Wins: 5, Losses: 3, Ties: 1, TotalMoves: 5, PointsFor: 1000.5},
			Metadata: model.RosterMetadata{Streak: "2W"},
		},
		{
			RosterID: 2, OwnerID: "u2", Players: []string{"p4", "p5", "p6"},
			Settings: model.RosterSettings{Wins: 5, Losses: 1, TotalMoves: 12, PointsFor: 1100},
			Metadata: model.RosterMetadata{Streak: "1L"},
		},
		{
			RosterID: 3, OwnerID: "u3", Players: []string{"p7", "p8", "p9"},
			Settings: model.RosterSettings{Wins: 5, Losses: 3, TotalMoves: 12, PointsFor: 900},
			Metadata: model.RosterMetadata{Streak: "W3"},
		},
		{
			RosterID: 4, OwnerID: "u4", Players: []string{"p10", "p11", "p12"},
			Settings: model.RosterSettings{Wins: 2, Losses: 6, TotalMoves: 3, PointsFor: 800.123},
		},
	}

	matchups := []model.Matchup{
		{
			RosterID: 1, MatchupID: 1, Points: 120.5,
			Players:       []string{"p1", "p2", "p3"},
			Starters:      []string{"p1", "p2"},
			PlayersPoints: map[string]float64{"p1": 30.2, "p2": 40.1, "p3": 50.2},
		},
		{
			RosterID: 2, MatchupID: 1, Points: 100.25,
			Players:       []string{"p4", "p5", "p6"},
			Starters:      []string{"p4", "p5"},
			PlayersPoints: map[string]float64{"p4": 10, "p5": 2.5, "p6": 5},
		},
		{
			RosterID: 3, MatchupID: 2, Points: 90,
			Players:       []string{"p7", "p8", "p9"},
			Starters:      []string{"p7", "p8"},
			PlayersPoints: map[string]float64{"p7": 45, "p8": 45, "p9": 0},
		},
		{
			RosterID: 4, MatchupID: 2, Points: 89.99,
			Players:       []string{"p10", "p11", "p12"},
			Starters:      []string{"p10", "p11"},
			PlayersPoints: map[string]float64{"p10": 50.2, "p12": 1},
		},
	}

	catalog := model.PlayerCatalog{
		"p1":  {ID: "p1", FullName: "Player One"},
		"p2":  {ID: "p2", FullName: "Player Two"},
		"p3":  {ID: "p3", FullName: "Player Three", Position: model.POS_QB, Team: "PHI"},
		"p4":  {ID: "p4", FullName: "Player Four"},
		"p5":  {ID: "p5", FullName: "Player Five"},
		"p6":  {ID: "p6", FullName: "Player Six"},
		"p7":  {ID: "p7", FullName: "Player Seven"},
		"p8":  {ID: "p8", FullName: "Player Eight"},
		"p9":  {ID: "p9", FullName: "Player Nine"},
		"p10": {ID: "p10", FullName: "Player Ten"},
		"p11": {ID: "p11", FullName: "Player Eleven"},
	}

	return Input{
		Week:     7,
		Users:    users,
		Rosters:  rosters,
		Matchups: matchups,
		Catalog:  catalog,
	}
}

func testDirectory() *Directory {
	in := testLeague()
	return NewDirectory(in.Users, in.Rosters)
}
