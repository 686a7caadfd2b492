package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/supportqa/ticket-metrics/internal/service"
)

// MockScoringService is a mock implementation of the ScoringService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockScoringService struct {
	TicketScoreFunc           func(ctx context.Context, ticketID int64) (decimal.Decimal, error)
	CategoryTimelineFunc      func(ctx context.Context, start, end time.Time) ([]service.CategoryScoreSummary, error)
	TicketCategoryMatrixFunc  func(ctx context.Context, start, end time.Time) ([]service.TicketCategoryScores, error)
	OverallScoreFunc          func(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	ComparePeriodsFunc        func(ctx context.Context, curStart, curEnd, prevStart, prevEnd time.Time) (service.PeriodChange, error)
	ComparePreviousPeriodFunc func(ctx context.Context, start, end time.Time) (service.PeriodChange, error)
}

// TicketScore implements the ScoringService interface
func (m *MockScoringService) TicketScore(ctx context.Context, ticketID int64) (decimal.Decimal, error) {
	if m.TicketScoreFunc != nil {
		return m.TicketScoreFunc(ctx, ticketID)
	}
	return decimal.Decimal{}, errors.New("TicketScoreFunc not implemented")
}

// CategoryTimeline implements the ScoringService interface
func (m *MockScoringService) CategoryTimeline(ctx context.Context, start, end time.Time) ([]service.CategoryScoreSummary, error) {
	if m.CategoryTimelineFunc != nil {
		return m.CategoryTimelineFunc(ctx, start, end)
	}
	return nil, errors.New("CategoryTimelineFunc not implemented")
}

// TicketCategoryMatrix implements the ScoringService interface
func (m *MockScoringService) TicketCategoryMatrix(ctx context.Context, start, end time.Time) ([]service.TicketCategoryScores, error) {
	if m.TicketCategoryMatrixFunc != nil {
		return m.TicketCategoryMatrixFunc(ctx, start, end)
	}
	return nil, errors.New("TicketCategoryMatrixFunc not implemented")
}

// OverallScore implements the ScoringService interface
func (m *MockScoringService) OverallScore(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	if m.OverallScoreFunc != nil {
		return m.OverallScoreFunc(ctx, start, end)
	}
	return decimal.Decimal{}, errors.New("OverallScoreFunc not implemented")
}

// ComparePeriods implements the ScoringService interface
func (m *MockScoringService) ComparePeriods(ctx context.Context, curStart, curEnd, prevStart, prevEnd time.Time) (service.PeriodChange, error) {
	if m.ComparePeriodsFunc != nil {
		return m.ComparePeriodsFunc(ctx, curStart, curEnd, prevStart, prevEnd)
	}
	return service.PeriodChange{}, errors.New("ComparePeriodsFunc not implemented")
}

// ComparePreviousPeriod implements the ScoringService interface
func (m *MockScoringService) ComparePreviousPeriod(ctx context.Context, start, end time.Time) (service.PeriodChange, error) {
	if m.ComparePreviousPeriodFunc != nil {
		return m.ComparePreviousPeriodFunc(ctx, start, end)
	}
	return service.PeriodChange{}, errors.New("ComparePreviousPeriodFunc not implemented")
}
