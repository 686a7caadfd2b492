package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/supportqa/ticket-metrics/internal/repository/models"
)

// ErrStorageFailure wraps any error coming out of the RatingStore.
var ErrStorageFailure = errors.New("storage failure")

// RatingStore defines the data access the aggregators need.
type RatingStore interface {
	FetchCategoryStats(ctx context.Context, date time.Time) ([]models.CategoryRatingStats, error)
	FetchCategoryWeights(ctx context.Context) (map[int64]decimal.Decimal, error)
	FetchRatingsByTicket(ctx context.Context, ticketID int64) (map[int64]decimal.Decimal, error)
	FetchRatedTicketIDs(ctx context.Context, start, end time.Time) ([]int64, error)
}
