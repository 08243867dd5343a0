package model

import (
	"strings"
)

const UnknownPlayer = "Unknown Player"

type CatalogPlayer struct {
	ID        string
	FullName  string
	FirstName string
	LastName  string
	Position  Position
	Team      string
}

// DisplayName returns the name to show for the player. Team defenses in the
// catalog only carry a first and last name, e.g. "Seattle" and "Seahawks".
func (p *CatalogPlayer) DisplayName() string {
	if n := strings.TrimSpace(p.FullName); n != "" {
		return n
	}
	if n := strings.TrimSpace(p.FirstName + " " + p.LastName); n != "" {
		return n
	}
	return UnknownPlayer
}

// PlayerCatalog is the static player data for a sport, indexed by player id.
// It is loaded from an outside source and is expected to be incomplete.
type PlayerCatalog map[string]CatalogPlayer

// Name looks up the display name of a player. The bool is false when the
// player is not in the catalog at all.
func (c PlayerCatalog) Name(playerID string) (string, bool) {
	p, found := c[playerID]
	if !found {
		return "", false
	}
	return p.DisplayName(), true
}
