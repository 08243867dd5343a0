package sleeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mww/fantasy_recap/model"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const SleeperURL = "https://api.sleeper.app"

var ErrLeagueNotFound = errors.New("league not found")

type Client interface {
	GetUsers(ctx context.Context, leagueID string) ([]model.User, error)
	GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error)
	// LoadPlayerCatalog loads the names and positions of every NFL player.
	LoadPlayerCatalog(ctx context.Context) (model.PlayerCatalog, error)
}

// Sleeper asks that clients stay under 1000 calls a minute.
const requestsPerSecond = 1000.0 / 60

type client struct {
	url        string
	playersURL string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
}

// New creates a client for the sleeper API. If playersURL is empty the player
// catalog is loaded from sleeper, otherwise it is loaded from playersURL which
// must serve a document in the same format.
func New(url, playersURL string) (Client, error) {
	if url == "" {
		url = SleeperURL
	}
	if playersURL == "" {
		playersURL = fmt.Sprintf("%s/v1/players/nfl", url)
	}
	c := &client{
		url:        url,
		playersURL: playersURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 10),
		// Stop calling sleeper for a while when it is clearly down instead of
		// waiting on the timeout for every request.
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:     "sleeper",
			Interval: 60 * time.Second,
			Timeout:  30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
	return c, nil
}

func NewForTest(url string) Client {
	c, _ := New(url, "")
	return c
}

func (c *client) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	var parsed []sleeperUser
	if err := c.get(ctx, fmt.Sprintf("%s/v1/league/%s/users", c.url, leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error loading users for league %s: %w", leagueID, err)
	}
	if parsed == nil {
		return nil, ErrLeagueNotFound
	}

	result := make([]model.User, 0, len(parsed))
	for _, u := range parsed {
		result = append(result, u.toUser())
	}
	return result, nil
}

func (c *client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	if err := c.get(ctx, fmt.Sprintf("%s/v1/league/%s/rosters", c.url, leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error loading rosters for league %s: %w", leagueID, err)
	}
	if parsed == nil {
		return nil, ErrLeagueNotFound
	}

	result := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		result = append(result, r.toRoster())
	}
	return result, nil
}

func (c *client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	var parsed []sleeperMatchup
	if err := c.get(ctx, fmt.Sprintf("%s/v1/league/%s/matchups/%d", c.url, leagueID, week), &parsed); err != nil {
		return nil, fmt.Errorf("error loading week %d matchups for league %s: %w", week, leagueID, err)
	}

	result := make([]model.Matchup, 0, len(parsed))
	for _, m := range parsed {
		result = append(result, m.toMatchup())
	}
	return result, nil
}

func (c *client) LoadPlayerCatalog(ctx context.Context) (model.PlayerCatalog, error) {
	var parsed map[string]sleeperPlayer
	if err := c.get(ctx, c.playersURL, &parsed); err != nil {
		return nil, fmt.Errorf("error loading player catalog: %w", err)
	}

	result := make(model.PlayerCatalog, len(parsed))
	for id, p := range parsed {
		if p.ID == "" {
			p.ID = id
		}
		result[id] = p.toCatalogPlayer()
	}
	return result, nil
}

func (c *client) get(ctx context.Context, url string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("error waiting to call sleeper: %w", err)
	}

	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.doGet(ctx, url, v)
	})
	return err
}

func (c *client) doGet(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
