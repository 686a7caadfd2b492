package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE rating_categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		weight REAL NOT NULL
	);
	CREATE TABLE tickets (
		id INTEGER PRIMARY KEY,
		created_at TEXT NOT NULL
	);
	CREATE TABLE ratings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ticket_id INTEGER,
		rating INTEGER,
		rating_category_id INTEGER,
		created_at TEXT
	);`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	_, err = db.Exec(`
	INSERT INTO rating_categories (id, name, weight) VALUES
	(1, 'Tone', 1.0), (2, 'Grammar', 2.0), (3, 'Compliance', 0.0);

	INSERT INTO tickets (id, created_at) VALUES
	(101, '2025-01-01 12:00:00+00:00'),
	(102, '2025-01-01 13:00:00+00:00'),
	(103, '2025-02-15 09:00:00+00:00'),
	(104, '2025-01-02 08:00:00+00:00');

	INSERT INTO ratings (ticket_id, rating, rating_category_id, created_at) VALUES
	(101, 4, 1, '2025-01-01 12:00:00+00:00'),
	(101, 5, 2, '2025-01-01 12:00:00+00:00'),
	(102, 2, 1, '2025-01-01 13:00:00+00:00'),
	(103, 3, 1, '2025-02-15 09:00:00+00:00');
	`)
	require.NoError(t, err)

	return db
}

func TestFetchCategoryStats(t *testing.T) {
	repo := NewRatingRepository(setupTestDB(t))
	ctx := context.Background()

	t.Run("groups by category for one date", func(t *testing.T) {
		date := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

		stats, err := repo.FetchCategoryStats(ctx, date)

		require.NoError(t, err)
		require.Len(t, stats, 2)

		// Category 1: ratings 4 and 2.
		assert.Equal(t, int64(1), stats[0].CategoryID)
		assert.Equal(t, int64(2), stats[0].Count)
		assert.True(t, decimal.NewFromInt(6).Equal(stats[0].Sum), "sum %s", stats[0].Sum)
		assert.True(t, decimal.NewFromInt(3).Equal(stats[0].Average), "avg %s", stats[0].Average)

		// Category 2: single rating 5.
		assert.Equal(t, int64(2), stats[1].CategoryID)
		assert.Equal(t, int64(1), stats[1].Count)
		assert.True(t, decimal.NewFromInt(5).Equal(stats[1].Average))
	})

	t.Run("date with no ratings returns nothing", func(t *testing.T) {
		date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		stats, err := repo.FetchCategoryStats(ctx, date)

		require.NoError(t, err)
		assert.Empty(t, stats)
	})

	t.Run("clock time does not leak into the date filter", func(t *testing.T) {
		date := time.Date(2025, 1, 1, 23, 45, 0, 0, time.UTC)

		stats, err := repo.FetchCategoryStats(ctx, date)

		require.NoError(t, err)
		assert.Len(t, stats, 2)
	})
}

func TestFetchCategoryWeights(t *testing.T) {
	repo := NewRatingRepository(setupTestDB(t))

	weights, err := repo.FetchCategoryWeights(context.Background())

	require.NoError(t, err)
	require.Len(t, weights, 3)
	assert.True(t, decimal.NewFromInt(1).Equal(weights[1]))
	assert.True(t, decimal.NewFromInt(2).Equal(weights[2]))
	assert.True(t, weights[3].IsZero())
}

func TestFetchRatingsByTicket(t *testing.T) {
	repo := NewRatingRepository(setupTestDB(t))
	ctx := context.Background()

	t.Run("ratings keyed by category", func(t *testing.T) {
		ratings, err := repo.FetchRatingsByTicket(ctx, 101)

		require.NoError(t, err)
		require.Len(t, ratings, 2)
		assert.True(t, decimal.NewFromInt(4).Equal(ratings[1]))
		assert.True(t, decimal.NewFromInt(5).Equal(ratings[2]))
	})

	t.Run("unrated ticket yields an empty map", func(t *testing.T) {
		ratings, err := repo.FetchRatingsByTicket(ctx, 104)

		require.NoError(t, err)
		assert.Empty(t, ratings)
	})
}

func TestFetchRatedTicketIDs(t *testing.T) {
	repo := NewRatingRepository(setupTestDB(t))
	ctx := context.Background()

	t.Run("rated tickets created in range, ascending", func(t *testing.T) {
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

		ids, err := repo.FetchRatedTicketIDs(ctx, start, end)

		require.NoError(t, err)
		// 104 was created in range but never rated; 103 is out of range.
		assert.Equal(t, []int64{101, 102}, ids)
	})

	t.Run("wider range picks up later tickets", func(t *testing.T) {
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

		ids, err := repo.FetchRatedTicketIDs(ctx, start, end)

		require.NoError(t, err)
		assert.Equal(t, []int64{101, 102, 103}, ids)
	})

	t.Run("empty range returns nothing", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

		ids, err := repo.FetchRatedTicketIDs(ctx, start, end)

		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestRepositoryErrorPaths(t *testing.T) {
	newMockRepo := func(t *testing.T) (*RatingRepository, sqlmock.Sqlmock) {
		t.Helper()
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		return NewRatingRepository(db), mock
	}

	ctx := context.Background()
	boom := errors.New("disk I/O error")

	t.Run("FetchCategoryStats query failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT").WillReturnError(boom)

		_, err := repo.FetchCategoryStats(ctx, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "query FetchCategoryStats")
	})

	t.Run("FetchCategoryStats scan failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		rows := sqlmock.NewRows([]string{"rating_category_id", "rating_count", "rating_sum", "rating_average"}).
			AddRow("not-an-int", "x", "y", "z")
		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		_, err := repo.FetchCategoryStats(ctx, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "scan FetchCategoryStats")
	})

	t.Run("FetchCategoryWeights query failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT id, weight FROM rating_categories").WillReturnError(boom)

		_, err := repo.FetchCategoryWeights(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "query FetchCategoryWeights")
	})

	t.Run("FetchRatingsByTicket query failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT").WillReturnError(boom)

		_, err := repo.FetchRatingsByTicket(ctx, 42)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "query FetchRatingsByTicket")
	})

	t.Run("FetchRatedTicketIDs row iteration failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		rows := sqlmock.NewRows([]string{"ticket_id"}).
			AddRow(int64(1)).
			RowError(0, boom)
		mock.ExpectQuery("SELECT DISTINCT").WillReturnRows(rows)

		_, err := repo.FetchRatedTicketIDs(ctx, time.Now(), time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "FetchRatedTicketIDs")
	})
}
