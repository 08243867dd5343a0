package controller

import (
	"context"
	"fmt"

	"github.com/mww/fantasy_recap/model"
)

type sleeperAdapter struct {
	c *controller
}

func (a *sleeperAdapter) getUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	users, err := a.c.sleeper.GetUsers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading users from sleeper for %s: %w", leagueID, err)
	}
	return users, nil
}

func (a *sleeperAdapter) getRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	rosters, err := a.c.sleeper.GetRosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading rosters from sleeper for %s: %w", leagueID, err)
	}
	return rosters, nil
}

func (a *sleeperAdapter) getMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	matchups, err := a.c.sleeper.GetMatchups(ctx, leagueID, week)
	if err != nil {
		return nil, fmt.Errorf("error loading week %d matchups from sleeper for %s: %w", week, leagueID, err)
	}
	return matchups, nil
}

func (a *sleeperAdapter) getPlayerCatalog(ctx context.Context) (model.PlayerCatalog, error) {
	return a.c.playerCatalog(ctx)
}
