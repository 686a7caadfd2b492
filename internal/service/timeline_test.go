package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/supportqa/ticket-metrics/internal/repository/models"
	"github.com/supportqa/ticket-metrics/internal/service/mocks"
)

// statsByDate builds a store whose per-date category stats come from a
// "2006-01-02" keyed map; every other date is empty.
func statsByDate(byDate map[string][]models.CategoryRatingStats, weights map[int64]decimal.Decimal) *mocks.MockRatingStore {
	return &mocks.MockRatingStore{
		FetchCategoryStatsFunc: func(ctx context.Context, date time.Time) ([]models.CategoryRatingStats, error) {
			return byDate[date.Format("2006-01-02")], nil
		},
		FetchCategoryWeightsFunc: func(ctx context.Context) (map[int64]decimal.Decimal, error) {
			return weights, nil
		},
	}
}

func newTimelineAggregator(store *mocks.MockRatingStore) *CategoryTimelineAggregator {
	return NewCategoryTimelineAggregator(newDailyAggregator(store), zap.NewNop())
}

func TestCategoryTimelineDaily(t *testing.T) {
	weights := map[int64]decimal.Decimal{1: d(1), 2: d(2)}

	t.Run("one point per rated day", func(t *testing.T) {
		store := statsByDate(map[string][]models.CategoryRatingStats{
			"2025-06-09": {{CategoryID: 1, Count: 2, Sum: d(6), Average: d(3)}},
			"2025-06-11": {{CategoryID: 1, Count: 1, Sum: d(5), Average: d(5)}},
		}, weights)

		start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

		summaries, err := newTimelineAggregator(store).Timeline(context.Background(), start, end)

		require.NoError(t, err)
		require.Len(t, summaries, 1)

		cat := summaries[0]
		assert.Equal(t, int64(1), cat.CategoryID)
		assert.Equal(t, int64(3), cat.RatingsCount)
		// Empty days between rated days produce no points.
		require.Len(t, cat.Timeline, 2)
		assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), cat.Timeline[0].BucketStart)
		assert.Equal(t, "60.00", cat.Timeline[0].Score.StringFixed(2))
		assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), cat.Timeline[1].BucketStart)
		assert.Equal(t, "100.00", cat.Timeline[1].Score.StringFixed(2))
		// AverageScore is the mean of the points, (60+100)/2.
		assert.Equal(t, "80.00", cat.AverageScore.StringFixed(2))
	})

	t.Run("categories appear in first-encounter order", func(t *testing.T) {
		store := statsByDate(map[string][]models.CategoryRatingStats{
			"2025-06-09": {{CategoryID: 2, Count: 1, Sum: d(5), Average: d(5)}},
			"2025-06-10": {
				{CategoryID: 1, Count: 1, Sum: d(4), Average: d(4)},
				{CategoryID: 2, Count: 1, Sum: d(3), Average: d(3)},
			},
		}, weights)

		start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		summaries, err := newTimelineAggregator(store).Timeline(context.Background(), start, end)

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, int64(2), summaries[0].CategoryID)
		assert.Equal(t, int64(1), summaries[1].CategoryID)
	})

	t.Run("category with no ratings in range is omitted", func(t *testing.T) {
		store := statsByDate(map[string][]models.CategoryRatingStats{
			"2025-06-09": {{CategoryID: 1, Count: 1, Sum: d(4), Average: d(4)}},
		}, weights)

		start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

		summaries, err := newTimelineAggregator(store).Timeline(context.Background(), start, end)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, int64(1), summaries[0].CategoryID)
	})

	t.Run("fully empty range is an empty result", func(t *testing.T) {
		store := statsByDate(nil, weights)

		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

		summaries, err := newTimelineAggregator(store).Timeline(context.Background(), start, end)

		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}

func TestCategoryTimelineWeekly(t *testing.T) {
	weights := map[int64]decimal.Decimal{1: d(1)}

	t.Run("ranges wider than 31 days bucket by week", func(t *testing.T) {
		// 2025-06-02 and 2025-06-03 share the week starting Monday
		// 2025-06-02; 2025-06-12 falls in the week of 2025-06-09.
		store := statsByDate(map[string][]models.CategoryRatingStats{
			"2025-06-02": {{CategoryID: 1, Count: 1, Sum: d(3), Average: d(3)}},
			"2025-06-03": {{CategoryID: 1, Count: 1, Sum: d(5), Average: d(5)}},
			"2025-06-12": {{CategoryID: 1, Count: 1, Sum: d(4), Average: d(4)}},
		}, weights)

		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

		summaries, err := newTimelineAggregator(store).Timeline(context.Background(), start, end)

		require.NoError(t, err)
		require.Len(t, summaries, 1)

		cat := summaries[0]
		assert.Equal(t, int64(3), cat.RatingsCount)
		require.Len(t, cat.Timeline, 2)

		// Week of June 2: mean of 60 and 100.
		assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), cat.Timeline[0].BucketStart)
		assert.Equal(t, "80.00", cat.Timeline[0].Score.StringFixed(2))

		// Week of June 9: single day.
		assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), cat.Timeline[1].BucketStart)
		assert.Equal(t, "80.00", cat.Timeline[1].Score.StringFixed(2))
	})

	t.Run("weekly mean rounds half to even", func(t *testing.T) {
		// Daily scores 60.00 and 60.01 in one week average to 60.005,
		// which banker's rounding settles at 60.00.
		store := statsByDate(map[string][]models.CategoryRatingStats{
			"2025-06-02": {{CategoryID: 1, Count: 1, Sum: d(3), Average: d(3)}},
			"2025-06-03": {{CategoryID: 1, Count: 1, Sum: d(3.0005), Average: d(3.0005)}},
		}, weights)

		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

		summaries, err := newTimelineAggregator(store).Timeline(context.Background(), start, end)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		require.Len(t, summaries[0].Timeline, 1)
		assert.Equal(t, "60.00", summaries[0].Timeline[0].Score.StringFixed(2))
	})

	t.Run("a 31 day range still buckets daily", func(t *testing.T) {
		store := statsByDate(map[string][]models.CategoryRatingStats{
			"2025-06-02": {{CategoryID: 1, Count: 1, Sum: d(3), Average: d(3)}},
			"2025-06-03": {{CategoryID: 1, Count: 1, Sum: d(5), Average: d(5)}},
		}, weights)

		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 31)

		summaries, err := newTimelineAggregator(store).Timeline(context.Background(), start, end)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		// Two daily points, not one merged week.
		assert.Len(t, summaries[0].Timeline, 2)
	})
}
