package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/supportqa/ticket-metrics/internal/repository/models"
)

// MockRatingStore is a function-field mock of the RatingStore interface
// for testing the service layer.
type MockRatingStore struct {
	FetchCategoryStatsFunc   func(ctx context.Context, date time.Time) ([]models.CategoryRatingStats, error)
	FetchCategoryWeightsFunc func(ctx context.Context) (map[int64]decimal.Decimal, error)
	FetchRatingsByTicketFunc func(ctx context.Context, ticketID int64) (map[int64]decimal.Decimal, error)
	FetchRatedTicketIDsFunc  func(ctx context.Context, start, end time.Time) ([]int64, error)
}

func (m *MockRatingStore) FetchCategoryStats(ctx context.Context, date time.Time) ([]models.CategoryRatingStats, error) {
	if m.FetchCategoryStatsFunc != nil {
		return m.FetchCategoryStatsFunc(ctx, date)
	}
	return nil, errors.New("FetchCategoryStatsFunc not implemented")
}

func (m *MockRatingStore) FetchCategoryWeights(ctx context.Context) (map[int64]decimal.Decimal, error) {
	if m.FetchCategoryWeightsFunc != nil {
		return m.FetchCategoryWeightsFunc(ctx)
	}
	return nil, errors.New("FetchCategoryWeightsFunc not implemented")
}

func (m *MockRatingStore) FetchRatingsByTicket(ctx context.Context, ticketID int64) (map[int64]decimal.Decimal, error) {
	if m.FetchRatingsByTicketFunc != nil {
		return m.FetchRatingsByTicketFunc(ctx, ticketID)
	}
	return nil, errors.New("FetchRatingsByTicketFunc not implemented")
}

func (m *MockRatingStore) FetchRatedTicketIDs(ctx context.Context, start, end time.Time) ([]int64, error) {
	if m.FetchRatedTicketIDsFunc != nil {
		return m.FetchRatedTicketIDsFunc(ctx, start, end)
	}
	return nil, errors.New("FetchRatedTicketIDsFunc not implemented")
}
