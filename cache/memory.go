package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

type entry struct {
	value   []byte
	expires time.Time
}

type memoryCache struct {
	clock clock.Clock
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]entry
}

// NewMemory creates a cache held in process memory. Expired entries are
// dropped when they are read.
func NewMemory(clock clock.Clock, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryCache{
		clock:   clock,
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.entries[key]
	if !found {
		return nil, false, nil
	}
	if !c.clock.Now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return slices.Clone(e.value), true, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:   slices.Clone(value),
		expires: c.clock.Now().Add(c.ttl),
	}
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}
