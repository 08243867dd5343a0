package recap

import (
	"github.com/mww/fantasy_recap/model"
)

// Directory holds the lookup tables used to turn owner, roster and player ids
// into team names. Build it once per report with NewDirectory.
type Directory struct {
	teams   map[string]string // user id -> team name
	owners  map[int]string    // roster id -> owner user id
	rosters []model.Roster
}

func NewDirectory(users []model.User, rosters []model.Roster) *Directory {
	d := &Directory{
		teams:   make(map[string]string, len(users)),
		owners:  make(map[int]string, len(rosters)),
		rosters: rosters,
	}
	for i := range users {
		// Keep the first user if an id is listed twice
		if _, found := d.teams[users[i].UserID]; !found {
			d.teams[users[i].UserID] = users[i].Name()
		}
	}
	for _, r := range rosters {
		if _, found := d.owners[r.RosterID]; !found {
			d.owners[r.RosterID] = r.OwnerID
		}
	}
	return d
}

func (d *Directory) TeamForOwner(ownerID string) (string, bool) {
	if ownerID == "" {
		return "", false
	}
	name, found := d.teams[ownerID]
	return name, found
}

func (d *Directory) TeamForRoster(rosterID int) (string, bool) {
	owner, found := d.owners[rosterID]
	if !found {
		return "", false
	}
	return d.TeamForOwner(owner)
}

// TeamForPlayer finds the team of the first roster that has the player and
// whose owner is a known user.
func (d *Directory) TeamForPlayer(playerID string) (string, bool) {
	for i := range d.rosters {
		if !d.rosters[i].HasPlayer(playerID) {
			continue
		}
		if name, found := d.TeamForOwner(d.rosters[i].OwnerID); found {
			return name, true
		}
	}
	return "", false
}

// RosterTeam is TeamForRoster with unresolvable rosters reported as
// model.UnknownTeam.
func (d *Directory) RosterTeam(rosterID int) string {
	name, found := d.TeamForRoster(rosterID)
	if !found {
		return model.UnknownTeam
	}
	return name
}

// ResolveTeamByPlayer returns the name of the team that rosters the player, or
// model.UnknownTeam.
func ResolveTeamByPlayer(playerID string, rosters []model.Roster, users []model.User) string {
	name, found := NewDirectory(users, rosters).TeamForPlayer(playerID)
	if !found {
		return model.UnknownTeam
	}
	return name
}

// ResolveTeamByRoster returns the name of the team that owns the roster, or
// model.UnknownTeam.
func ResolveTeamByRoster(rosterID int, rosters []model.Roster, users []model.User) string {
	return NewDirectory(users, rosters).RosterTeam(rosterID)
}
