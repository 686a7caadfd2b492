package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/supportqa/ticket-metrics/internal/scoring"
	"github.com/supportqa/ticket-metrics/pkg/cache"
)

// TicketScorer computes the overall weighted score of a single ticket
// across all its ratings, memoized per ticket id. A ticket with no
// ratings (or none in a weighted category) scores 0.
type TicketScorer struct {
	store   RatingStore
	weights *WeightProvider
	cache   *cache.Keyed[int64, decimal.Decimal]
	logger  *zap.Logger
}

func NewTicketScorer(store RatingStore, weights *WeightProvider, c *cache.Keyed[int64, decimal.Decimal], logger *zap.Logger) *TicketScorer {
	if store == nil {
		panic("store must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketScorer{
		store:   store,
		weights: weights,
		cache:   c,
		logger:  logger.Named("ticket-scorer"),
	}
}

// Score returns the ticket's weighted percentage score.
func (s *TicketScorer) Score(ctx context.Context, ticketID int64) (decimal.Decimal, error) {
	return s.cache.GetOrCompute(ticketID, func() (decimal.Decimal, error) {
		ratings, err := s.store.FetchRatingsByTicket(ctx, ticketID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}

		weightMap, err := s.weights.Snapshot(ctx)
		if err != nil {
			return decimal.Zero, err
		}

		score, err := scoring.Calculate(ratings, weightMap)
		if err != nil {
			return decimal.Zero, fmt.Errorf("score ticket %d: %w", ticketID, err)
		}

		s.logger.Debug("computed ticket score",
			zap.Int64("ticket_id", ticketID),
			zap.String("score", score.String()))
		return score, nil
	})
}
