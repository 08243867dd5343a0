package sleeper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/mww/fantasy_recap/model"
	"github.com/mww/fantasy_recap/testutils"
	"github.com/sony/gobreaker"
)

func TestLoadPlayerCatalog_success(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	expected := map[string]model.CatalogPlayer{
		"2374":  {ID: "2374", FullName: "Tyler Lockett", FirstName: "Tyler", LastName: "Lockett", Position: model.POS_WR, Team: "SEA"},
		"6904":  {ID: "6904", FullName: "Jalen Hurts", FirstName: "Jalen", LastName: "Hurts", Position: model.POS_QB, Team: "PHI"},
		"1379":  {ID: "1379", FullName: "Kyle Juszczyk", FirstName: "Kyle", LastName: "Juszczyk", Position: model.POS_RB, Team: "SF"},
		"11596": {ID: "11596", FullName: "Ben Sinnott", FirstName: "Ben", LastName: "Sinnott", Position: model.POS_TE, Team: "WAS"},
		"SEA":   {ID: "SEA", FirstName: "Seattle", LastName: "Seahawks", Position: model.POS_DEF, Team: "SEA"},
	}

	catalog, err := c.LoadPlayerCatalog(context.Background())
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(catalog) != 9 {
		t.Fatalf("wrong number of players, expected 9, got %d", len(catalog))
	}

	for id, e := range expected {
		p, found := catalog[id]
		if !found {
			t.Errorf("player %s missing from the catalog", id)
			continue
		}
		if p != e {
			t.Errorf("expected %v, got %v", e, p)
		}
	}

	if n, _ := catalog.Name("SEA"); n != "Seattle Seahawks" {
		t.Errorf("expected defense name to be built from first and last, got %s", n)
	}
}

func TestLoadPlayerCatalog_customURL(t *testing.T) {
	fake := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/players_data.json" {
			rw.WriteHeader(http.StatusNotFound)
			return
		}
		rw.Write([]byte(`{"4046": {"full_name": "Patrick Mahomes", "position": "QB", "team": "KC"}}`))
	}))
	defer fake.Close()

	c, err := New(SleeperURL, fake.URL+"/players_data.json")
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	catalog, err := c.LoadPlayerCatalog(context.Background())
	if err != nil {
		t.Fatalf("error loading catalog: %v", err)
	}
	if p := catalog["4046"]; p.ID != "4046" || p.FullName != "Patrick Mahomes" {
		t.Errorf("unexpected catalog entry: %v", p)
	}
}

func TestLoadPlayerCatalog_httpError(t *testing.T) {
	fakeSleeper := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
	}))
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL)

	catalog, err := c.LoadPlayerCatalog(context.Background())
	if err == nil {
		t.Fatalf("error should not have been nil")
	}
	if catalog != nil {
		t.Fatalf("catalog shoud have been nil")
	}
}

func TestGetUsers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()
	c := NewForTest(fakeSleeper.URL())

	expected := []model.User{
		{UserID: "300638784440004608", DisplayName: "8thAndFinalRule", TeamName: "Puk Nukem"},
		{UserID: "362744067425296384", DisplayName: "mww", TeamName: "No-Bell Prizes"},
		{UserID: "300368913101774848", DisplayName: "gee17"},
		{UserID: "325106323354046464", DisplayName: "Jollymon", TeamName: "Jolly Roger"},
	}

	users, err := c.GetUsers(context.Background(), testutils.TestLeagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(expected, users) {
		t.Errorf("expected users to be: %v, but was: %v", expected, users)
	}

	users, err = c.GetUsers(context.Background(), "1234")
	if !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound, got: %v", err)
	}
	if users != nil {
		t.Errorf("expected no users, got: %v", users)
	}
}

func TestGetRosters(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()
	c := NewForTest(fakeSleeper.URL())

	rosters, err := c.GetRosters(context.Background(), testutils.TestLeagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rosters) != 4 {
		t.Fatalf("expected 4 rosters, got %d", len(rosters))
	}

	expected := model.Roster{
		RosterID: 1,
		OwnerID:  "300638784440004608",
		Players:  []string{"6904", "2374", "9509"},
		Settings: model.RosterSettings{Wins: 4, Losses: 2, TotalMoves: 7, PointsFor: 702.44},
		Metadata: model.RosterMetadata{Streak: "2W"},
	}
	if !reflect.DeepEqual(expected, rosters[0]) {
		t.Errorf("expected roster: %v, got: %v", expected, rosters[0])
	}

	// The last roster has no owner and sleeper sends nulls for it
	orphan := rosters[3]
	if orphan.OwnerID != "" || orphan.Players != nil || orphan.Metadata.Streak != "" {
		t.Errorf("unexpected orphan roster: %v", orphan)
	}

	if _, err := c.GetRosters(context.Background(), "1234"); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound, got: %v", err)
	}
}

func TestGetMatchups(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()
	c := NewForTest(fakeSleeper.URL())

	matchups, err := c.GetMatchups(context.Background(), testutils.TestLeagueID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matchups) != 4 {
		t.Fatalf("expected 4 matchups, got %d", len(matchups))
	}

	expected := model.Matchup{
		RosterID:      2,
		MatchupID:     1,
		Points:        98.1,
		Players:       []string{"6786", "5844", "11596"},
		Starters:      []string{"6786", "5844"},
		PlayersPoints: map[string]float64{"6786": 28.4, "5844": 3.2, "11596": 0},
	}
	if !reflect.DeepEqual(expected, matchups[1]) {
		t.Errorf("expected matchup: %v, got: %v", expected, matchups[1])
	}

	matchups, err = c.GetMatchups(context.Background(), testutils.TestLeagueID, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matchups) != 0 {
		t.Errorf("expected no matchups for week 9, got %d", len(matchups))
	}
}

func TestSleeperMatchup_nullMatchupID(t *testing.T) {
	m := sleeperMatchup{RosterID: 3, Points: 12}
	if r := m.toMatchup(); r.MatchupID != 0 || r.RosterID != 3 {
		t.Errorf("unexpected matchup: %v", r)
	}
}

func TestGet_circuitBreaker(t *testing.T) {
	var calls atomic.Int32
	fakeSleeper := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL)

	for i := 0; i < 5; i++ {
		if _, err := c.GetUsers(context.Background(), "1"); err == nil {
			t.Fatalf("expected an error")
		}
	}

	// The breaker is open now so sleeper isn't called again
	_, err := c.GetUsers(context.Background(), "1")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected the circuit breaker to be open, got: %v", err)
	}
	if n := calls.Load(); n != 5 {
		t.Errorf("expected 5 calls to sleeper, got %d", n)
	}
}

func TestGet_canceledContext(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()
	c := NewForTest(fakeSleeper.URL())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.GetUsers(ctx, testutils.TestLeagueID); err == nil {
		t.Errorf("expected an error for a canceled context")
	}
}
