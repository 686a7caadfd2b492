package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/supportqa/ticket-metrics/internal/scoring"
)

// PeriodComparator runs the overall aggregation for two windows and
// reports the numeric score delta.
type PeriodComparator struct {
	overall *OverallScoreAggregator
	logger  *zap.Logger
}

func NewPeriodComparator(overall *OverallScoreAggregator, logger *zap.Logger) *PeriodComparator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PeriodComparator{
		overall: overall,
		logger:  logger.Named("period-comparator"),
	}
}

// Compare scores both windows and returns current - previous rounded to
// 2 decimals.
func (c *PeriodComparator) Compare(ctx context.Context, curStart, curEnd, prevStart, prevEnd time.Time) (PeriodChange, error) {
	current, err := c.overall.OverallScore(ctx, curStart, curEnd)
	if err != nil {
		return PeriodChange{}, fmt.Errorf("current score: %w", err)
	}

	previous, err := c.overall.OverallScore(ctx, prevStart, prevEnd)
	if err != nil {
		return PeriodChange{}, fmt.Errorf("previous score: %w", err)
	}

	change := PeriodChange{
		CurrentScore:  current,
		PreviousScore: previous,
		Change:        current.Sub(previous).Round(2),
	}

	c.logger.Debug("compared periods",
		zap.Time("current_start", curStart),
		zap.Time("current_end", curEnd),
		zap.Time("previous_start", prevStart),
		zap.Time("previous_end", prevEnd),
		zap.String("change", change.Change.String()))

	return change, nil
}

// ComparePrevious derives the previous window as the window of equal
// duration immediately preceding [start, end] and compares against it.
// The bounds are truncated to their calendar dates first: aggregation
// is per-date, so clock times must not shift which dates the derived
// window covers.
func (c *PeriodComparator) ComparePrevious(ctx context.Context, start, end time.Time) (PeriodChange, error) {
	first := scoring.Midnight(start)
	last := scoring.Midnight(end)

	prevEnd := first
	prevStart := first.Add(-last.Sub(first))
	return c.Compare(ctx, start, end, prevStart, prevEnd)
}
