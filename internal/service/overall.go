package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OverallScoreAggregator averages daily percentages across a range
// into one number.
//
// Unlike the timeline aggregator, empty days DO join the denominator
// here: a day with no ratings contributes a 0 percentage. The two
// policies are intentionally different and must not be harmonized
// silently, since doing so changes reported numbers.
type OverallScoreAggregator struct {
	daily  *DailyScoreAggregator
	logger *zap.Logger
}

func NewOverallScoreAggregator(daily *DailyScoreAggregator, logger *zap.Logger) *OverallScoreAggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverallScoreAggregator{
		daily:  daily,
		logger: logger.Named("overall-aggregator"),
	}
}

// OverallScore returns the mean of the daily aggregate percentages over
// every date in [start, end], rounded half-up to 2 decimals.
func (a *OverallScoreAggregator) OverallScore(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	dates := datesIn(start, end)
	if len(dates) == 0 {
		return decimal.Zero, nil
	}

	sum := decimal.Zero
	for _, date := range dates {
		day, err := a.daily.ScoreForDate(ctx, date)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(day.Percentage())
	}

	score := sum.Div(decimal.NewFromInt(int64(len(dates)))).Round(2)

	a.logger.Debug("computed overall score",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("days", len(dates)),
		zap.String("score", score.String()))

	return score, nil
}
