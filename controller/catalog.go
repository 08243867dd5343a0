package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mww/fantasy_recap/model"
)

// The catalog is several megabytes and changes slowly, reuse it for a day.
const catalogMaxAge = 24 * time.Hour

func (c *controller) playerCatalog(ctx context.Context) (model.PlayerCatalog, error) {
	c.catalogMu.Lock()
	defer c.catalogMu.Unlock()

	if c.catalog != nil && c.clock.Now().Sub(c.catalogLoadedAt) < catalogMaxAge {
		return c.catalog, nil
	}
	if err := c.loadCatalogLocked(ctx); err != nil {
		return nil, err
	}
	return c.catalog, nil
}

func (c *controller) RefreshPlayerCatalog(ctx context.Context) error {
	c.catalogMu.Lock()
	defer c.catalogMu.Unlock()

	return c.loadCatalogLocked(ctx)
}

func (c *controller) loadCatalogLocked(ctx context.Context) error {
	catalog, err := c.sleeper.LoadPlayerCatalog(ctx)
	if err != nil {
		return fmt.Errorf("error loading the player catalog: %w", err)
	}

	c.catalog = catalog
	c.catalogLoadedAt = c.clock.Now()
	log.Printf("loaded %d players into the catalog", len(catalog))
	return nil
}

func (c *controller) RunPeriodicCatalogRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()
	ticker := c.clock.Ticker(frequency)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			if err := c.RefreshPlayerCatalog(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}
