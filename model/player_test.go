package model

import "testing"

func TestCatalogPlayerDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		player   CatalogPlayer
		expected string
	}{
		{name: "full name", player: CatalogPlayer{FullName: "Jalen Hurts", FirstName: "Jalen", LastName: "Hurts"}, expected: "Jalen Hurts"},
		{name: "defense", player: CatalogPlayer{FirstName: "Seattle", LastName: "Seahawks"}, expected: "Seattle Seahawks"},
		{name: "no name", player: CatalogPlayer{ID: "123"}, expected: UnknownPlayer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if n := tc.player.DisplayName(); n != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, n)
			}
		})
	}
}

func TestPlayerCatalogName(t *testing.T) {
	c := PlayerCatalog{
		"6904": {ID: "6904", FullName: "Jalen Hurts"},
		"999":  {ID: "999"},
	}

	if n, found := c.Name("6904"); !found || n != "Jalen Hurts" {
		t.Errorf("expected Jalen Hurts, got %q (found: %v)", n, found)
	}
	if n, found := c.Name("999"); !found || n != UnknownPlayer {
		t.Errorf("expected placeholder name for a nameless entry, got %q (found: %v)", n, found)
	}
	if _, found := c.Name("1"); found {
		t.Errorf("player 1 should not have been found")
	}

	var empty PlayerCatalog
	if _, found := empty.Name("6904"); found {
		t.Errorf("nil catalog should not find anything")
	}
}

func TestUserName(t *testing.T) {
	u := User{UserID: "1", DisplayName: "mww"}
	if u.Name() != "mww" {
		t.Errorf("expected display name, got %s", u.Name())
	}
	u.TeamName = "Touchdown Makers"
	if u.Name() != "Touchdown Makers" {
		t.Errorf("expected team name, got %s", u.Name())
	}
}
