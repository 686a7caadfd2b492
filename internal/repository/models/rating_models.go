package models

import "github.com/shopspring/decimal"

// CategoryRatingStats holds one category's rating statistics for a
// single rating date.
type CategoryRatingStats struct {
	CategoryID int64
	Count      int64
	Sum        decimal.Decimal
	Average    decimal.Decimal
}

// RatingCategory is a row of the rating_categories lookup table.
type RatingCategory struct {
	ID     int64
	Name   string
	Weight decimal.Decimal
}
