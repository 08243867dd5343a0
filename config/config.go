// Package config holds the settings read from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        int    `env:"PORT" envDefault:"3000"`
	SeasonsFile string `env:"SEASONS_FILE" envDefault:"seasons.yaml"`
	// Season selects the calendar from the seasons file used to work out the
	// current week.
	Season     string `env:"SEASON" envDefault:"2024"`
	SleeperURL string `env:"SLEEPER_URL" envDefault:"https://api.sleeper.app"`
	// PlayersURL overrides where the player catalog is loaded from. When empty
	// the catalog comes from the sleeper api.
	PlayersURL string `env:"PLAYERS_URL"`

	// RedisAddr enables the redis cache. Without it summaries are cached in
	// memory.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	EnforceReportWindow bool `env:"ENFORCE_REPORT_WINDOW" envDefault:"true"`
	// StrictMatchupIDs fails a summary when a matchup has no matchup id
	// instead of leaving that team off the scoreboard.
	StrictMatchupIDs bool `env:"STRICT_MATCHUP_IDS"`
}

func Load() (*Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.SeasonsFile == "" {
		return nil, fmt.Errorf("SEASONS_FILE must not be empty")
	}
	return &cfg, nil
}
