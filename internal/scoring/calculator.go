package scoring

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	minRating = decimal.NewFromInt(0)
	maxRating = decimal.NewFromInt(5)
	hundred   = decimal.NewFromInt(100)
)

// ErrInvalidRating marks a rating outside the 0-5 scale. The RPC layer
// maps it to an invalid-argument status.
var ErrInvalidRating = errors.New("invalid rating")

// Calculate computes the weighted percentage score for a set of
// per-category ratings.
//
// Each rating is normalized from the 0-5 scale to a percentage
// (rating/5 * 100), multiplied by its category weight, and the final
// score is the weighted average:
//
//	score = sum(normalized * weight) / sum(weight)
//
// rounded half-up to 2 decimal places. Categories that have a rating
// but no entry in weights are skipped; they still have their rating
// validated. If no category carries weight the score is 0.
//
// Example: ratings {1:4, 2:5} with weights {1:2, 2:3} gives
// (80*2 + 100*3) / (2+3) = 92.00.
//
// Decimal accumulation is exact, so the result does not depend on map
// iteration order.
func Calculate(ratings, weights map[int64]decimal.Decimal) (decimal.Decimal, error) {
	weightedSum := decimal.Zero
	totalWeight := decimal.Zero

	for categoryID, rating := range ratings {
		if rating.LessThan(minRating) || rating.GreaterThan(maxRating) {
			return decimal.Zero, fmt.Errorf("%w: rating %s out of bounds [0,5] for category %d",
				ErrInvalidRating, rating, categoryID)
		}

		weight, ok := weights[categoryID]
		if !ok {
			continue
		}

		normalized := rating.Div(maxRating).Mul(hundred)
		weightedSum = weightedSum.Add(normalized.Mul(weight))
		totalWeight = totalWeight.Add(weight)
	}

	if totalWeight.IsZero() {
		return decimal.Zero, nil
	}
	return weightedSum.Div(totalWeight).Round(2), nil
}
