package grpc

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/supportqa/ticket-metrics/internal/service"
)

// Cacher defines the interface for response cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// ScoringService is the slice of the scoring facade the handlers consume.
type ScoringService interface {
	TicketScore(ctx context.Context, ticketID int64) (decimal.Decimal, error)
	CategoryTimeline(ctx context.Context, start, end time.Time) ([]service.CategoryScoreSummary, error)
	TicketCategoryMatrix(ctx context.Context, start, end time.Time) ([]service.TicketCategoryScores, error)
	OverallScore(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	ComparePeriods(ctx context.Context, curStart, curEnd, prevStart, prevEnd time.Time) (service.PeriodChange, error)
	ComparePreviousPeriod(ctx context.Context, start, end time.Time) (service.PeriodChange, error)
}
