package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/supportqa/ticket-metrics/pkg/cache"
)

// ScoringService bundles the aggregators behind one facade for the RPC
// layer. Range queries decompose into per-date (or per-ticket)
// cache-or-compute calls; only the caches are shared mutable state.
type ScoringService struct {
	ticket   *TicketScorer
	timeline *CategoryTimelineAggregator
	matrix   *TicketCategoryMatrixAggregator
	overall  *OverallScoreAggregator
	compare  *PeriodComparator
}

// Caches groups the per-computation-kind cache regions. Their key
// shapes differ (date; ticket id), so each kind gets its own region.
type Caches struct {
	Day          *cache.Keyed[string, DayStats]
	TicketMatrix *cache.Keyed[int64, *TicketCategoryScores]
	TicketScore  *cache.Keyed[int64, decimal.Decimal]
}

// NewCaches builds the cache regions with a shared TTL and size bound.
func NewCaches(maxEntries int, ttl time.Duration) Caches {
	return Caches{
		Day:          cache.NewKeyed[string, DayStats](maxEntries, ttl),
		TicketMatrix: cache.NewKeyed[int64, *TicketCategoryScores](maxEntries, ttl),
		TicketScore:  cache.NewKeyed[int64, decimal.Decimal](maxEntries, ttl),
	}
}

func NewScoringService(store RatingStore, weights *WeightProvider, caches Caches, logger *zap.Logger) *ScoringService {
	if store == nil {
		panic("store must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	daily := NewDailyScoreAggregator(store, weights, caches.Day, logger)
	overall := NewOverallScoreAggregator(daily, logger)

	return &ScoringService{
		ticket:   NewTicketScorer(store, weights, caches.TicketScore, logger),
		timeline: NewCategoryTimelineAggregator(daily, logger),
		matrix:   NewTicketCategoryMatrixAggregator(store, weights, caches.TicketMatrix, logger),
		overall:  overall,
		compare:  NewPeriodComparator(overall, logger),
	}
}

func (s *ScoringService) TicketScore(ctx context.Context, ticketID int64) (decimal.Decimal, error) {
	return s.ticket.Score(ctx, ticketID)
}

func (s *ScoringService) CategoryTimeline(ctx context.Context, start, end time.Time) ([]CategoryScoreSummary, error) {
	return s.timeline.Timeline(ctx, start, end)
}

func (s *ScoringService) TicketCategoryMatrix(ctx context.Context, start, end time.Time) ([]TicketCategoryScores, error) {
	return s.matrix.Matrix(ctx, start, end)
}

func (s *ScoringService) OverallScore(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return s.overall.OverallScore(ctx, start, end)
}

func (s *ScoringService) ComparePeriods(ctx context.Context, curStart, curEnd, prevStart, prevEnd time.Time) (PeriodChange, error) {
	return s.compare.Compare(ctx, curStart, curEnd, prevStart, prevEnd)
}

func (s *ScoringService) ComparePreviousPeriod(ctx context.Context, start, end time.Time) (PeriodChange, error) {
	return s.compare.ComparePrevious(ctx, start, end)
}
