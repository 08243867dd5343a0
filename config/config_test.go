package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_defaults(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "seasons.yaml", cfg.SeasonsFile)
	assert.Equal(t, "2024", cfg.Season)
	assert.Equal(t, "https://api.sleeper.app", cfg.SleeperURL)
	assert.Empty(t, cfg.PlayersURL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.True(t, cfg.EnforceReportWindow)
	assert.False(t, cfg.StrictMatchupIDs)
}

func TestParse_overrides(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"PORT":                  "8080",
		"SEASON":                "2023",
		"REDIS_ADDR":            "localhost:6379",
		"CACHE_TTL":             "15m",
		"ENFORCE_REPORT_WINDOW": "false",
		"STRICT_MATCHUP_IDS":    "true",
	}})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "2023", cfg.Season)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.EnforceReportWindow)
	assert.True(t, cfg.StrictMatchupIDs)
}

func TestParse_invalid(t *testing.T) {
	tests := []map[string]string{
		{"PORT": "abc"},
		{"PORT": "0"},
		{"CACHE_TTL": "forever"},
		{"PORT": "70000"},
	}

	for _, e := range tests {
		if _, err := parse(env.Options{Environment: e}); err == nil {
			t.Errorf("expected an error for %v", e)
		}
	}
}
