package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultMaxEntries = 1000
	defaultTTL        = 15 * time.Minute
)

// Keyed memoizes expensive computations per key. Entries expire after
// a fixed TTL and the least recently used entry is evicted once the
// size bound is reached.
//
// Two concurrent callers computing the same uncached key may both run
// their compute function; the computations are idempotent and cheap
// enough that duplicate work beats holding a per-key lock.
type Keyed[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

// NewKeyed creates a cache bounded to maxEntries with the given TTL.
// Non-positive arguments fall back to the defaults (1000 entries,
// 15 minutes).
func NewKeyed[K comparable, V any](maxEntries int, ttl time.Duration) *Keyed[K, V] {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Keyed[K, V]{
		lru: expirable.NewLRU[K, V](maxEntries, nil, ttl),
	}
}

// GetOrCompute returns the cached value for key, or invokes compute,
// stores its result and returns it. A compute error propagates to the
// caller and nothing is cached for the key.
func (c *Keyed[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}

	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	c.lru.Add(key, v)
	return v, nil
}

// Len reports the number of live entries.
func (c *Keyed[K, V]) Len() int {
	return c.lru.Len()
}

// Purge drops every entry.
func (c *Keyed[K, V]) Purge() {
	c.lru.Purge()
}
