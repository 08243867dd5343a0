package model

var PlatformSleeper = "sleeper"

// UnknownTeam is used whenever an owner, roster or player cannot be tied back
// to a team in the league.
const UnknownTeam = "Unknown Team"

func IsPlatformSupported(p string) bool {
	return p == PlatformSleeper
}

type User struct {
	UserID      string
	DisplayName string
	TeamName    string // Optional, the name the manager gave their team
}

// Name returns the name a user's team is known by in the league. Managers
// that never named their team fall back to their display name.
func (u *User) Name() string {
	if u.TeamName != "" {
		return u.TeamName
	}
	return u.DisplayName
}

type Roster struct {
	RosterID int
	OwnerID  string // Empty for rosters without a manager
	Players  []string
	Settings RosterSettings
	Metadata RosterMetadata
}

type RosterSettings struct {
	Wins       int
	Losses     int
	Ties       int
	TotalMoves int
	PointsFor  float64
}

type RosterMetadata struct {
	Streak string // e.g. "3W" or "W3" for three straight wins, "1L" for one loss
}

func (r *Roster) HasPlayer(playerID string) bool {
	for _, p := range r.Players {
		if p == playerID {
			return true
		}
	}
	return false
}

// Matchup is the result for a single roster in a single week. The two rosters
// playing each other share the same MatchupID. A MatchupID of 0 means the
// platform did not assign the roster to a game.
type Matchup struct {
	RosterID      int
	MatchupID     int
	Points        float64
	PlayersPoints map[string]float64
	// Players lists everyone on the roster that week in the order the platform
	// returned them.
	Players []string
	// Starters is nil when the platform did not report a lineup.
	Starters []string
}

func (m *Matchup) IsStarter(playerID string) bool {
	for _, s := range m.Starters {
		if s == playerID {
			return true
		}
	}
	return false
}

type StandingsRow struct {
	TeamName  string  `json:"team"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Ties      int     `json:"ties"`
	PointsFor float64 `json:"points_for"`
}

type TeamScore struct {
	TeamName string  `json:"team"`
	Points   float64 `json:"points"`
}

// Scoreboard holds the teams for each game of a week, indexed by matchup id.
// Each slice is sorted with the highest score first.
type Scoreboard map[int][]TeamScore
