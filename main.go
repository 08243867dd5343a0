package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/mww/fantasy_recap/cache"
	"github.com/mww/fantasy_recap/calendar"
	"github.com/mww/fantasy_recap/config"
	"github.com/mww/fantasy_recap/controller"
	"github.com/mww/fantasy_recap/metrics"
	"github.com/mww/fantasy_recap/sleeper"
	"github.com/mww/fantasy_recap/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error reading configuration: %v", err)
	}

	seasons, err := calendar.LoadSeasonsFile(cfg.SeasonsFile)
	if err != nil {
		log.Fatalf("error loading season calendars from %s: %v", cfg.SeasonsFile, err)
	}

	clock := clock.New()

	sleeperClient, err := sleeper.New(cfg.SleeperURL, cfg.PlayersURL)
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}

	var summaryCache cache.Cache
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		summaryCache, err = cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
		cancel()
		if err != nil {
			log.Fatalf("error creating redis cache: %v", err)
		}
	} else {
		summaryCache = cache.NewMemory(clock, cfg.CacheTTL)
	}

	m := metrics.New()

	ctrl, err := controller.New(clock, sleeperClient, seasons, summaryCache, m, controller.Config{
		Season:              cfg.Season,
		EnforceReportWindow: cfg.EnforceReportWindow,
		StrictMatchupIDs:    cfg.StrictMatchupIDs,
	})
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(cfg.Port, ctrl, m.Handler())
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Reload the player catalog from sleeper every 24-hours
	wg.Add(1)
	go ctrl.RunPeriodicCatalogRefresh(24*time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
