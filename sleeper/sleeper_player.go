package sleeper

import (
	"github.com/mww/fantasy_recap/model"
)

type sleeperPlayer struct {
	ID        string `json:"player_id"`
	FullName  string `json:"full_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

func (p *sleeperPlayer) toCatalogPlayer() model.CatalogPlayer {
	return model.CatalogPlayer{
		ID:        p.ID,
		FullName:  p.FullName,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      p.Team,
	}
}
