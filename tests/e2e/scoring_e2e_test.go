//go:build e2e

package e2e

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/supportqa/ticket-metrics/api/v1"
	handler "github.com/supportqa/ticket-metrics/internal/grpc"
	"github.com/supportqa/ticket-metrics/internal/repository"
	"github.com/supportqa/ticket-metrics/internal/service"
	"github.com/supportqa/ticket-metrics/tests/e2e/mocks"
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

	// Timestamps use the layout the sqlite3 driver binds time.Time
	// with, so range comparisons against TEXT columns stay correct.
	_, err = db.Exec(`
	INSERT INTO rating_categories (id, name, weight) VALUES
	(1, 'Tone', 1.0), (2, 'Grammar', 2.0), (3, 'Compliance', 0.0);

	INSERT INTO tickets (id, created_at) VALUES
	(101, '2025-01-01 12:00:00+00:00'),
	(102, '2025-01-01 13:00:00+00:00'),
	(103, '2025-01-01 15:00:00+00:00'),
	(201, '2024-12-31 12:00:00+00:00');

	INSERT INTO ratings (ticket_id, rating, rating_category_id, created_at) VALUES
	-- January 1st: tickets 101 and 102.
	(101, 4, 1, '2025-01-01 12:00:00+00:00'),
	(101, 5, 2, '2025-01-01 12:30:00+00:00'),
	(102, 2, 1, '2025-01-01 13:00:00+00:00'),

	-- January 2nd: ticket 103 rated the day after it was opened.
	(103, 5, 1, '2025-01-02 09:00:00+00:00'),

	-- December 31st: previous-period data for comparisons.
	(201, 3, 1, '2024-12-31 12:00:00+00:00');
	`)
	require.NoError(t, err)

	return db
}

func newHandlers(t *testing.T, db *sql.DB, cache handler.Cacher) *handler.GRPCHandlers {
	t.Helper()

	logger := zap.NewNop()
	repo := repository.NewRatingRepository(db)
	weights := service.NewWeightProvider(repo, time.Hour)
	svc := service.NewScoringService(repo, weights, service.NewCaches(100, time.Minute), logger)

	return handler.NewGRPCHandlers(svc, cache, logger, 5*time.Minute)
}

func TestE2E_GetTicketScore(t *testing.T) {
	h := newHandlers(t, setupTestDB(t), &mocks.InMemoryCache{})

	resp, err := h.GetTicketScore(context.Background(), &pb.GetTicketScoreRequest{TicketId: 101})

	require.NoError(t, err)
	// Tone 4/5 -> 80 at weight 1, Grammar 5/5 -> 100 at weight 2.
	assert.InDelta(t, 93.33, resp.Score, 0.001)
}

func TestE2E_GetOverallQualityScore(t *testing.T) {
	h := newHandlers(t, setupTestDB(t), &mocks.InMemoryCache{})
	ctx := context.Background()

	t.Run("single day", func(t *testing.T) {
		resp, err := h.GetOverallQualityScore(ctx, &pb.TimePeriodRequest{
			StartDate: "2025-01-01",
			EndDate:   "2025-01-01",
		})

		require.NoError(t, err)
		// WeightedSum 6*1 + 5*2 = 16 over TotalWeight 4: 16*100/20.
		assert.InDelta(t, 80.0, resp.Score, 0.001)
	})

	t.Run("two days", func(t *testing.T) {
		resp, err := h.GetOverallQualityScore(ctx, &pb.TimePeriodRequest{
			StartDate: "2025-01-01",
			EndDate:   "2025-01-02",
		})

		require.NoError(t, err)
		// mean(80.00, 100.00)
		assert.InDelta(t, 90.0, resp.Score, 0.001)
	})

	t.Run("empty days drag the score down", func(t *testing.T) {
		resp, err := h.GetOverallQualityScore(ctx, &pb.TimePeriodRequest{
			StartDate: "2025-01-01",
			EndDate:   "2025-01-04",
		})

		require.NoError(t, err)
		// (80 + 100 + 0 + 0) / 4
		assert.InDelta(t, 45.0, resp.Score, 0.001)
	})

	t.Run("window with no ratings scores zero", func(t *testing.T) {
		resp, err := h.GetOverallQualityScore(ctx, &pb.TimePeriodRequest{
			StartDate: "2025-12-01",
			EndDate:   "2025-12-07",
		})

		require.NoError(t, err)
		assert.Zero(t, resp.Score)
	})
}

func TestE2E_GetCategoryTimelineScores(t *testing.T) {
	h := newHandlers(t, setupTestDB(t), &mocks.InMemoryCache{})

	resp, err := h.GetCategoryTimelineScores(context.Background(), &pb.TimePeriodRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-02",
	})

	require.NoError(t, err)
	require.Len(t, resp.Categories, 2)

	tone := resp.Categories[0]
	assert.Equal(t, int64(1), tone.CategoryId)
	assert.Equal(t, int64(3), tone.RatingsCount)
	assert.InDelta(t, 80.0, tone.AverageScore, 0.001)
	require.Len(t, tone.Timeline, 2)
	assert.Equal(t, "2025-01-01", tone.Timeline[0].BucketStart)
	assert.InDelta(t, 60.0, tone.Timeline[0].Score, 0.001)
	assert.Equal(t, "2025-01-02", tone.Timeline[1].BucketStart)
	assert.InDelta(t, 100.0, tone.Timeline[1].Score, 0.001)

	grammar := resp.Categories[1]
	assert.Equal(t, int64(2), grammar.CategoryId)
	assert.Equal(t, int64(1), grammar.RatingsCount)
	require.Len(t, grammar.Timeline, 1)
	assert.InDelta(t, 100.0, grammar.Timeline[0].Score, 0.001)
}

func TestE2E_GetTicketCategoryMatrix(t *testing.T) {
	h := newHandlers(t, setupTestDB(t), &mocks.InMemoryCache{})

	resp, err := h.GetTicketCategoryMatrix(context.Background(), &pb.TimePeriodRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-02",
	})

	require.NoError(t, err)
	require.Len(t, resp.Tickets, 3)

	byTicket := make(map[int64]map[int64]float64)
	for _, row := range resp.Tickets {
		scores := make(map[int64]float64, len(row.Scores))
		for _, s := range row.Scores {
			scores[s.CategoryId] = s.Score
		}
		byTicket[row.TicketId] = scores
	}

	require.Len(t, byTicket[101], 2)
	assert.InDelta(t, 80.0, byTicket[101][1], 0.001)
	assert.InDelta(t, 100.0, byTicket[101][2], 0.001)

	require.Len(t, byTicket[102], 1)
	assert.InDelta(t, 40.0, byTicket[102][1], 0.001)

	require.Len(t, byTicket[103], 1)
	assert.InDelta(t, 100.0, byTicket[103][1], 0.001)
}

func TestE2E_ComparePeriodScores(t *testing.T) {
	h := newHandlers(t, setupTestDB(t), &mocks.InMemoryCache{})
	ctx := context.Background()

	t.Run("explicit previous window", func(t *testing.T) {
		resp, err := h.ComparePeriodScores(ctx, &pb.ComparePeriodsRequest{
			CurrentStart:  "2025-01-01",
			CurrentEnd:    "2025-01-02",
			PreviousStart: "2024-12-31",
			PreviousEnd:   "2024-12-31",
		})

		require.NoError(t, err)
		assert.InDelta(t, 90.0, resp.CurrentPeriodScore, 0.001)
		assert.InDelta(t, 60.0, resp.PreviousPeriodScore, 0.001)
		assert.InDelta(t, 30.0, resp.ScoreChange, 0.001)
	})

	t.Run("previous window derived when omitted", func(t *testing.T) {
		resp, err := h.ComparePeriodScores(ctx, &pb.ComparePeriodsRequest{
			CurrentStart: "2025-01-01",
			CurrentEnd:   "2025-01-02",
		})

		require.NoError(t, err)
		// Derived previous window is Dec 31 .. Jan 1: mean(60, 80).
		assert.InDelta(t, 90.0, resp.CurrentPeriodScore, 0.001)
		assert.InDelta(t, 70.0, resp.PreviousPeriodScore, 0.001)
		assert.InDelta(t, 20.0, resp.ScoreChange, 0.001)
	})
}

func TestE2E_ResponseCaching(t *testing.T) {
	cache := mocks.NewTrackingCache()
	h := newHandlers(t, setupTestDB(t), cache)
	ctx := context.Background()

	req := &pb.TimePeriodRequest{StartDate: "2025-01-01", EndDate: "2025-01-02"}

	first, err := h.GetOverallQualityScore(ctx, req)
	require.NoError(t, err)

	// The cache write after a miss happens in the background.
	require.Eventually(t, func() bool {
		_, sets := cache.Stats()
		return sets >= 1
	}, time.Second, 10*time.Millisecond, "expected an async cache write")

	second, err := h.GetOverallQualityScore(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.Score, second.Score)
	gets, sets := cache.Stats()
	assert.GreaterOrEqual(t, gets, 2)
	assert.Equal(t, 1, sets)
}

func TestE2E_InvalidRequests(t *testing.T) {
	h := newHandlers(t, setupTestDB(t), &mocks.InMemoryCache{})
	ctx := context.Background()

	t.Run("end before start", func(t *testing.T) {
		_, err := h.GetOverallQualityScore(ctx, &pb.TimePeriodRequest{
			StartDate: "2025-01-02",
			EndDate:   "2025-01-01",
		})

		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unparseable date", func(t *testing.T) {
		_, err := h.GetCategoryTimelineScores(ctx, &pb.TimePeriodRequest{
			StartDate: "01/01/2025",
			EndDate:   "2025-01-02",
		})

		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("non-positive ticket id", func(t *testing.T) {
		_, err := h.GetTicketScore(ctx, &pb.GetTicketScoreRequest{TicketId: 0})

		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
