package sleeper

import (
	"github.com/mww/fantasy_recap/model"
)

type sleeperUser struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Metadata    *userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}

func (u *sleeperUser) toUser() model.User {
	user := model.User{
		UserID:      u.UserID,
		DisplayName: u.DisplayName,
	}
	if u.Metadata != nil {
		user.TeamName = u.Metadata.TeamName
	}
	return user
}

type sleeperRoster struct {
	RosterID int             `json:"roster_id"`
	OwnerID  *string         `json:"owner_id"`
	Players  []string        `json:"players"`
	Settings rosterSettings  `json:"settings"`
	Metadata *rosterMetadata `json:"metadata"`
}

type rosterSettings struct {
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Ties        int `json:"ties"`
	TotalMoves  int `json:"total_moves"`
	FPts        int `json:"fpts"`
	FPtsDecimal int `json:"fpts_decimal"`
}

type rosterMetadata struct {
	Streak string `json:"streak"`
}

func (r *sleeperRoster) toRoster() model.Roster {
	roster := model.Roster{
		RosterID: r.RosterID,
		Players:  r.Players,
		Settings: model.RosterSettings{
			Wins:       r.Settings.Wins,
			Losses:     r.Settings.Losses,
			Ties:       r.Settings.Ties,
			TotalMoves: r.Settings.TotalMoves,
			// sleeper splits the points into the whole number and the hundredths
			PointsFor: float64(r.Settings.FPts*100+r.Settings.FPtsDecimal) / 100,
		},
	}
	if r.OwnerID != nil {
		roster.OwnerID = *r.OwnerID
	}
	if r.Metadata != nil {
		roster.Metadata = model.RosterMetadata{
			Streak: r.Metadata.Streak,
		}
	}
	return roster
}

type sleeperMatchup struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     *int               `json:"matchup_id"`
	Points        float64            `json:"points"`
	Players       []string           `json:"players"`
	Starters      []string           `json:"starters"`
	PlayersPoints map[string]float64 `json:"players_points"`
}

func (m *sleeperMatchup) toMatchup() model.Matchup {
	matchup := model.Matchup{
		RosterID:      m.RosterID,
		Points:        m.Points,
		Players:       m.Players,
		Starters:      m.Starters,
		PlayersPoints: m.PlayersPoints,
	}
	if m.MatchupID != nil {
		matchup.MatchupID = *m.MatchupID
	}
	return matchup
}
