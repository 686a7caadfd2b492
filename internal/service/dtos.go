package service

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	five    = decimal.NewFromInt(5)
	hundred = decimal.NewFromInt(100)
)

// CategoryDayStat is one category's aggregate for a single rating date.
type CategoryDayStat struct {
	CategoryID    int64
	RatingsCount  int64
	AverageRating decimal.Decimal
	Weight        decimal.Decimal
	Score         decimal.Decimal
}

// DayStats is the cached per-date aggregate. Categories are ordered by
// category id. WeightedSum and TotalWeight accumulate rating*weight and
// count*weight over every rated category of the day.
type DayStats struct {
	Date        time.Time
	Categories  []CategoryDayStat
	WeightedSum decimal.Decimal
	TotalWeight decimal.Decimal
}

// Empty reports whether the day had no ratings at all.
func (d DayStats) Empty() bool {
	return len(d.Categories) == 0
}

// Percentage converts the day's weighted sums to a 0-100 score,
// rounded half-up to 2 decimals. A day with no contributing weight
// scores 0, never an error.
func (d DayStats) Percentage() decimal.Decimal {
	if d.TotalWeight.IsZero() {
		return decimal.Zero
	}
	return d.WeightedSum.Mul(hundred).Div(d.TotalWeight.Mul(five)).Round(2)
}

// TimelinePoint is one daily or weekly score in a category timeline.
type TimelinePoint struct {
	BucketStart time.Time
	Score       decimal.Decimal
}

// CategoryScoreSummary is the per-category result of a timeline query.
type CategoryScoreSummary struct {
	CategoryID   int64
	RatingsCount int64
	AverageScore decimal.Decimal
	Timeline     []TimelinePoint
}

// CategoryScore is a single category's percentage score for one ticket.
type CategoryScore struct {
	CategoryID int64
	Score      decimal.Decimal
}

// TicketCategoryScores is one row of the ticket x category matrix.
type TicketCategoryScores struct {
	TicketID int64
	Scores   []CategoryScore
}

// PeriodChange compares the overall scores of two windows.
type PeriodChange struct {
	CurrentScore  decimal.Decimal
	PreviousScore decimal.Decimal
	Change        decimal.Decimal
}
