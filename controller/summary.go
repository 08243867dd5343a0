package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mww/fantasy_recap/cache"
	"github.com/mww/fantasy_recap/model"
	"github.com/mww/fantasy_recap/recap"
	"golang.org/x/sync/errgroup"
)

func (c *controller) WeeklySummary(ctx context.Context, platform, leagueID string) (*recap.Report, error) {
	if c.cfg.EnforceReportWindow {
		if open, day := c.window.IsOpen(c.clock.Now()); !open {
			return nil, fmt.Errorf("%w, it is currently %s", ErrReportWindowClosed, day)
		}
	}

	week, ok := c.ReportingWeek()
	if !ok {
		return nil, ErrNoCompletedWeek
	}
	return c.SummaryForWeek(ctx, platform, leagueID, week)
}

func (c *controller) SummaryForWeek(ctx context.Context, platform, leagueID string, week int) (*recap.Report, error) {
	if week < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWeek, week)
	}
	if !model.IsPlatformSupported(platform) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platform)
	}

	key := cache.RecapKey(platform, leagueID, week)
	if r, found := c.cachedReport(ctx, key); found {
		c.metrics.CacheHits.Inc()
		return r, nil
	}
	c.metrics.CacheMisses.Inc()

	start := c.clock.Now()
	r, err := c.generate(ctx, getPlatformAdapter(platform, c), leagueID, week)
	if err != nil {
		c.metrics.ObserveSummary("error", c.clock.Now().Sub(start))
		return nil, err
	}
	c.metrics.ObserveSummary("ok", c.clock.Now().Sub(start))

	c.storeReport(ctx, key, r)
	return r, nil
}

func (c *controller) generate(ctx context.Context, adapter platformAdapter, leagueID string, week int) (*recap.Report, error) {
	in := recap.Input{Week: week}

	// The collections don't depend on each other so load them all at once.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := adapter.getUsers(gctx, leagueID)
		if err != nil {
			c.metrics.PlatformErrors.WithLabelValues("users").Inc()
			return err
		}
		in.Users = users
		return nil
	})
	g.Go(func() error {
		rosters, err := adapter.getRosters(gctx, leagueID)
		if err != nil {
			c.metrics.PlatformErrors.WithLabelValues("rosters").Inc()
			return err
		}
		in.Rosters = rosters
		return nil
	})
	g.Go(func() error {
		matchups, err := adapter.getMatchups(gctx, leagueID, week)
		if err != nil {
			c.metrics.PlatformErrors.WithLabelValues("matchups").Inc()
			return err
		}
		in.Matchups = matchups
		return nil
	})
	g.Go(func() error {
		catalog, err := adapter.getPlayerCatalog(gctx)
		if err != nil {
			c.metrics.PlatformErrors.WithLabelValues("players").Inc()
			return err
		}
		in.Catalog = catalog
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r, err := recap.Generate(in, recap.Options{StrictMatchupIDs: c.cfg.StrictMatchupIDs})
	if err != nil {
		return nil, fmt.Errorf("error building the week %d summary for league %s: %w", week, leagueID, err)
	}

	for _, d := range r.Diagnostics {
		log.Printf("league %s week %d: skipped record, %v", leagueID, week, d)
		c.metrics.Diagnostics.WithLabelValues(d.Metric).Inc()
	}
	return r, nil
}

// A broken cache shouldn't stop summaries from being served, so cache errors
// are logged and otherwise ignored.
func (c *controller) cachedReport(ctx context.Context, key string) (*recap.Report, bool) {
	b, found, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Printf("error reading %s from the cache: %v", key, err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var r recap.Report
	if err := json.Unmarshal(b, &r); err != nil {
		log.Printf("error decoding cached summary %s, dropping it: %v", key, err)
		if err := c.cache.Delete(ctx, key); err != nil {
			log.Printf("error deleting %s from the cache: %v", key, err)
		}
		return nil, false
	}
	return &r, true
}

func (c *controller) storeReport(ctx context.Context, key string, r *recap.Report) {
	b, err := json.Marshal(r)
	if err != nil {
		log.Printf("error encoding summary %s: %v", key, err)
		return
	}
	if err := c.cache.Set(ctx, key, b); err != nil {
		log.Printf("error writing %s to the cache: %v", key, err)
	}
}
