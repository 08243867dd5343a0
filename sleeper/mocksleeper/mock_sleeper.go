package mocksleeper

import (
	"context"

	"github.com/mww/fantasy_recap/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	args := c.Called(ctx, leagueID)

	var res []model.User
	if args.Get(0) != nil {
		res = args.Get(0).([]model.User)
	}

	return res, args.Error(1)
}

func (c *Client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Roster)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	args := c.Called(ctx, leagueID, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}

func (c *Client) LoadPlayerCatalog(ctx context.Context) (model.PlayerCatalog, error) {
	args := c.Called(ctx)

	var res model.PlayerCatalog
	if args.Get(0) != nil {
		res = args.Get(0).(model.PlayerCatalog)
	}

	return res, args.Error(1)
}
