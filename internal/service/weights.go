package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/supportqa/ticket-metrics/pkg/cache"
)

const weightsCacheKey = "category-weights"

// WeightProvider serves the categoryId -> weight table through a
// long-TTL single-entry cache. Weights change rarely; every
// computation takes one snapshot and never observes a change
// mid-computation.
type WeightProvider struct {
	store RatingStore
	cache *cache.Keyed[string, map[int64]decimal.Decimal]
}

func NewWeightProvider(store RatingStore, ttl time.Duration) *WeightProvider {
	return &WeightProvider{
		store: store,
		cache: cache.NewKeyed[string, map[int64]decimal.Decimal](1, ttl),
	}
}

// Snapshot returns the current weight map. Callers must not mutate it.
func (p *WeightProvider) Snapshot(ctx context.Context) (map[int64]decimal.Decimal, error) {
	return p.cache.GetOrCompute(weightsCacheKey, func() (map[int64]decimal.Decimal, error) {
		weights, err := p.store.FetchCategoryWeights(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		return weights, nil
	})
}
