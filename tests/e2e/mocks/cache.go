package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// InMemoryCache never stores anything; every Get is a clean miss.
type InMemoryCache struct{}

func (c *InMemoryCache) Get(ctx context.Context, key string, dest any) error {
	return redis.Nil
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	return nil
}

func (c *InMemoryCache) Close() error {
	return nil
}

// TrackingCache stores JSON-encoded entries in memory and counts calls,
// mimicking the Redis-backed cache closely enough for cache-path tests.
type TrackingCache struct {
	mu       sync.Mutex
	GetCalls int
	SetCalls int
	data     map[string]cacheEntry
}

type cacheEntry struct {
	payload []byte
	expiry  time.Time
}

func NewTrackingCache() *TrackingCache {
	return &TrackingCache{
		data: make(map[string]cacheEntry),
	}
}

func (c *TrackingCache) Get(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.GetCalls++
	entry, exists := c.data[key]
	if !exists || time.Now().After(entry.expiry) {
		return redis.Nil
	}
	return json.Unmarshal(entry.payload, dest)
}

func (c *TrackingCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.SetCalls++
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = cacheEntry{
		payload: payload,
		expiry:  time.Now().Add(exp),
	}
	return nil
}

func (c *TrackingCache) Close() error {
	return nil
}

// Stats returns the call counters under the lock.
func (c *TrackingCache) Stats() (gets, sets int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.GetCalls, c.SetCalls
}
