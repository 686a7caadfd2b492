package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/supportqa/ticket-metrics/internal/scoring"
)

// CategoryTimelineAggregator rolls per-date category scores up into
// per-category timelines, bucketed daily or weekly depending on the
// width of the range.
type CategoryTimelineAggregator struct {
	daily  *DailyScoreAggregator
	logger *zap.Logger
}

func NewCategoryTimelineAggregator(daily *DailyScoreAggregator, logger *zap.Logger) *CategoryTimelineAggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryTimelineAggregator{
		daily:  daily,
		logger: logger.Named("timeline-aggregator"),
	}
}

// Timeline returns one summary per category that had at least one
// rating in [start, end]. Categories with no ratings anywhere in the
// range are omitted rather than reported as zero. Categories appear in
// the order first encountered scanning dates ascending.
func (a *CategoryTimelineAggregator) Timeline(ctx context.Context, start, end time.Time) ([]CategoryScoreSummary, error) {
	bucket := scoring.ResolveBucket(start, end)

	type categoryAccum struct {
		ratingsCount int64
		points       []TimelinePoint
	}
	accums := make(map[int64]*categoryAccum)
	var order []int64

	for _, date := range datesIn(start, end) {
		day, err := a.daily.ScoreForDate(ctx, date)
		if err != nil {
			return nil, err
		}

		for _, cs := range day.Categories {
			acc, ok := accums[cs.CategoryID]
			if !ok {
				acc = &categoryAccum{}
				accums[cs.CategoryID] = acc
				order = append(order, cs.CategoryID)
			}
			acc.ratingsCount += cs.RatingsCount
			acc.points = append(acc.points, TimelinePoint{
				BucketStart: day.Date,
				Score:       cs.Score,
			})
		}
	}

	summaries := make([]CategoryScoreSummary, 0, len(order))
	for _, categoryID := range order {
		acc := accums[categoryID]

		points := acc.points
		if bucket == scoring.BucketWeekly {
			points = groupByWeek(points)
		}

		summaries = append(summaries, CategoryScoreSummary{
			CategoryID:   categoryID,
			RatingsCount: acc.ratingsCount,
			AverageScore: meanScore(points).Round(2),
			Timeline:     points,
		})
	}

	a.logger.Debug("computed category timeline",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.String("bucket", bucket.String()),
		zap.Int("categories", len(summaries)))

	return summaries, nil
}

// groupByWeek merges daily points into Monday-truncated weekly points.
// A week's score is the plain mean of its daily scores (each day
// counts once regardless of how many ratings it holds), rounded
// half-even so repeated small aggregations carry no directional bias.
// Input points arrive in ascending date order, so weeks come out
// ascending too.
func groupByWeek(daily []TimelinePoint) []TimelinePoint {
	type weekAccum struct {
		sum   decimal.Decimal
		count int64
	}
	weeks := make(map[time.Time]*weekAccum)
	var order []time.Time

	for _, p := range daily {
		weekStart := scoring.WeekStart(p.BucketStart)
		acc, ok := weeks[weekStart]
		if !ok {
			acc = &weekAccum{sum: decimal.Zero}
			weeks[weekStart] = acc
			order = append(order, weekStart)
		}
		acc.sum = acc.sum.Add(p.Score)
		acc.count++
	}

	points := make([]TimelinePoint, 0, len(order))
	for _, weekStart := range order {
		acc := weeks[weekStart]
		points = append(points, TimelinePoint{
			BucketStart: weekStart,
			Score:       acc.sum.Div(decimal.NewFromInt(acc.count)).RoundBank(2),
		})
	}
	return points
}

func meanScore(points []TimelinePoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range points {
		sum = sum.Add(p.Score)
	}
	return sum.Div(decimal.NewFromInt(int64(len(points))))
}
