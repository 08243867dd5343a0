// Package cache keeps generated recaps around so the platform is not queried
// for every request. Recaps for a completed week do not change, the TTL only
// bounds how stale a recap can be when a league corrects its scores.
package cache

import (
	"context"
	"fmt"
	"time"
)

const DefaultTTL = 1 * time.Hour

type Cache interface {
	// Get returns the cached value and true, or false if there is no
	// unexpired value for the key.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// RecapKey is the key a league's recap for a week is stored under.
func RecapKey(platform, leagueID string, week int) string {
	return fmt.Sprintf("recap:%s:%s:%d", platform, leagueID, week)
}
