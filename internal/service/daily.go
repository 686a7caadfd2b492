package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/supportqa/ticket-metrics/internal/scoring"
	"github.com/supportqa/ticket-metrics/pkg/cache"
)

// DailyScoreAggregator computes one calendar date's per-category and
// overall aggregates, memoized per date. An empty day is cached too:
// it represents "no ratings", and downstream callers decide whether it
// joins their denominator.
type DailyScoreAggregator struct {
	store   RatingStore
	weights *WeightProvider
	cache   *cache.Keyed[string, DayStats]
	logger  *zap.Logger
}

func NewDailyScoreAggregator(store RatingStore, weights *WeightProvider, c *cache.Keyed[string, DayStats], logger *zap.Logger) *DailyScoreAggregator {
	if store == nil {
		panic("store must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyScoreAggregator{
		store:   store,
		weights: weights,
		cache:   c,
		logger:  logger.Named("daily-aggregator"),
	}
}

// ScoreForDate returns the aggregate for one calendar date, computing
// and caching it on first use.
func (a *DailyScoreAggregator) ScoreForDate(ctx context.Context, date time.Time) (DayStats, error) {
	day := scoring.Midnight(date)
	return a.cache.GetOrCompute(day.Format("2006-01-02"), func() (DayStats, error) {
		return a.compute(ctx, day)
	})
}

func (a *DailyScoreAggregator) compute(ctx context.Context, day time.Time) (DayStats, error) {
	stats, err := a.store.FetchCategoryStats(ctx, day)
	if err != nil {
		return DayStats{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	result := DayStats{
		Date:        day,
		WeightedSum: decimal.Zero,
		TotalWeight: decimal.Zero,
	}
	if len(stats) == 0 {
		a.logger.Debug("no ratings for date", zap.Time("date", day))
		return result, nil
	}

	weightMap, err := a.weights.Snapshot(ctx)
	if err != nil {
		return DayStats{}, err
	}

	for _, stat := range stats {
		score, err := scoring.Calculate(
			map[int64]decimal.Decimal{stat.CategoryID: stat.Average},
			weightMap,
		)
		if err != nil {
			return DayStats{}, fmt.Errorf("score category %d on %s: %w",
				stat.CategoryID, day.Format("2006-01-02"), err)
		}

		weight := weightMap[stat.CategoryID] // zero when the category carries no weight
		result.Categories = append(result.Categories, CategoryDayStat{
			CategoryID:    stat.CategoryID,
			RatingsCount:  stat.Count,
			AverageRating: stat.Average,
			Weight:        weight,
			Score:         score,
		})

		result.WeightedSum = result.WeightedSum.Add(stat.Sum.Mul(weight))
		result.TotalWeight = result.TotalWeight.Add(weight.Mul(decimal.NewFromInt(stat.Count)))
	}

	a.logger.Debug("computed day stats",
		zap.Time("date", day),
		zap.Int("categories", len(result.Categories)),
		zap.String("weighted_sum", result.WeightedSum.String()),
		zap.String("total_weight", result.TotalWeight.String()))

	return result, nil
}

// datesIn enumerates every calendar date in [start, end] inclusive.
func datesIn(start, end time.Time) []time.Time {
	first := scoring.Midnight(start)
	last := scoring.Midnight(end)

	var dates []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
