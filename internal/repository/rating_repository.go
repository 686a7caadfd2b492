package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/supportqa/ticket-metrics/internal/repository/models"
)

const dateLayout = "2006-01-02"

// RatingRepository reads ratings, categories and ticket ids from the
// relational store. All scoring happens in the service layer; the
// queries here only group and count.
type RatingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// FetchCategoryStats returns per-category count, sum and average of
// ratings created on the given calendar date.
func (r *RatingRepository) FetchCategoryStats(ctx context.Context, date time.Time) ([]models.CategoryRatingStats, error) {
	const query = `
		SELECT
			rating_category_id,
			COUNT(*)    AS rating_count,
			SUM(rating) AS rating_sum,
			AVG(rating) AS rating_average
		FROM ratings
		WHERE DATE(created_at) = ?
		GROUP BY rating_category_id
		ORDER BY rating_category_id
	`

	rows, err := r.db.QueryContext(ctx, query, date.UTC().Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("query FetchCategoryStats: %w", err)
	}
	defer rows.Close()

	var results []models.CategoryRatingStats
	for rows.Next() {
		var (
			stat models.CategoryRatingStats
			sum  float64
			avg  float64
		)
		if err := rows.Scan(&stat.CategoryID, &stat.Count, &sum, &avg); err != nil {
			return nil, fmt.Errorf("scan FetchCategoryStats row: %w", err)
		}
		stat.Sum = decimal.NewFromFloat(sum)
		stat.Average = decimal.NewFromFloat(avg)
		results = append(results, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate FetchCategoryStats: %w", err)
	}
	return results, nil
}

// FetchCategoryWeights returns the whole categoryId -> weight table.
// Callers cache this snapshot; weights change rarely.
func (r *RatingRepository) FetchCategoryWeights(ctx context.Context) (map[int64]decimal.Decimal, error) {
	const query = `SELECT id, weight FROM rating_categories`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query FetchCategoryWeights: %w", err)
	}
	defer rows.Close()

	weights := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var (
			id     int64
			weight float64
		)
		if err := rows.Scan(&id, &weight); err != nil {
			return nil, fmt.Errorf("scan FetchCategoryWeights row: %w", err)
		}
		weights[id] = decimal.NewFromFloat(weight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate FetchCategoryWeights: %w", err)
	}
	return weights, nil
}

// FetchRatingsByTicket returns one ticket's ratings keyed by category.
func (r *RatingRepository) FetchRatingsByTicket(ctx context.Context, ticketID int64) (map[int64]decimal.Decimal, error) {
	const query = `
		SELECT rating_category_id, rating
		FROM ratings
		WHERE ticket_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("query FetchRatingsByTicket: %w", err)
	}
	defer rows.Close()

	ratings := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var (
			categoryID int64
			rating     int64
		)
		if err := rows.Scan(&categoryID, &rating); err != nil {
			return nil, fmt.Errorf("scan FetchRatingsByTicket row: %w", err)
		}
		ratings[categoryID] = decimal.NewFromInt(rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate FetchRatingsByTicket: %w", err)
	}
	return ratings, nil
}

// FetchRatedTicketIDs returns the distinct ids of tickets created in
// [start, end] that carry at least one rating.
func (r *RatingRepository) FetchRatedTicketIDs(ctx context.Context, start, end time.Time) ([]int64, error) {
	const query = `
		SELECT DISTINCT r.ticket_id
		FROM ratings AS r
		JOIN tickets AS t ON r.ticket_id = t.id
		WHERE t.created_at >= ? AND t.created_at <= ?
		ORDER BY r.ticket_id
	`

	rows, err := r.db.QueryContext(ctx, query, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("query FetchRatedTicketIDs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan FetchRatedTicketIDs row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate FetchRatedTicketIDs: %w", err)
	}
	return ids, nil
}
