package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/supportqa/ticket-metrics/internal/scoring"
	"github.com/supportqa/ticket-metrics/pkg/cache"
)

// TicketCategoryMatrixAggregator computes the per-ticket x per-category
// score matrix for tickets created in a range. A ticket's row depends
// only on its own ratings, so rows are cached per ticket id, not per
// range. A nil cached row means "ticket has no ratings" and is distinct
// from a computed zero; such tickets are dropped from the result.
type TicketCategoryMatrixAggregator struct {
	store   RatingStore
	weights *WeightProvider
	cache   *cache.Keyed[int64, *TicketCategoryScores]
	logger  *zap.Logger
}

func NewTicketCategoryMatrixAggregator(store RatingStore, weights *WeightProvider, c *cache.Keyed[int64, *TicketCategoryScores], logger *zap.Logger) *TicketCategoryMatrixAggregator {
	if store == nil {
		panic("store must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketCategoryMatrixAggregator{
		store:   store,
		weights: weights,
		cache:   c,
		logger:  logger.Named("matrix-aggregator"),
	}
}

// Matrix returns one row per rated ticket created in [start, end].
func (a *TicketCategoryMatrixAggregator) Matrix(ctx context.Context, start, end time.Time) ([]TicketCategoryScores, error) {
	ticketIDs, err := a.store.FetchRatedTicketIDs(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	rows := make([]TicketCategoryScores, 0, len(ticketIDs))
	for _, ticketID := range ticketIDs {
		row, err := a.cache.GetOrCompute(ticketID, func() (*TicketCategoryScores, error) {
			return a.compute(ctx, ticketID)
		})
		if err != nil {
			return nil, err
		}
		if row == nil {
			continue
		}
		rows = append(rows, *row)
	}

	a.logger.Debug("computed ticket category matrix",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("tickets", len(rows)))

	return rows, nil
}

func (a *TicketCategoryMatrixAggregator) compute(ctx context.Context, ticketID int64) (*TicketCategoryScores, error) {
	ratings, err := a.store.FetchRatingsByTicket(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if len(ratings) == 0 {
		a.logger.Debug("no ratings for ticket", zap.Int64("ticket_id", ticketID))
		return nil, nil
	}

	weightMap, err := a.weights.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]int64, 0, len(ratings))
	for categoryID := range ratings {
		if _, ok := weightMap[categoryID]; ok {
			categoryIDs = append(categoryIDs, categoryID)
		}
	}
	sort.Slice(categoryIDs, func(i, j int) bool { return categoryIDs[i] < categoryIDs[j] })

	scores := make([]CategoryScore, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		score, err := scoring.Calculate(
			map[int64]decimal.Decimal{categoryID: ratings[categoryID]},
			weightMap,
		)
		if err != nil {
			return nil, fmt.Errorf("score ticket %d category %d: %w", ticketID, categoryID, err)
		}
		scores = append(scores, CategoryScore{CategoryID: categoryID, Score: score})
	}

	return &TicketCategoryScores{TicketID: ticketID, Scores: scores}, nil
}
