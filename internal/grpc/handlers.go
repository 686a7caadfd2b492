package grpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/supportqa/ticket-metrics/api/v1"
	"github.com/supportqa/ticket-metrics/internal/scoring"
	"github.com/supportqa/ticket-metrics/internal/service"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

type CacheKeyType string

const (
	cacheKeyTicketScore      CacheKeyType = "grpc:ticket_score"
	cacheKeyCategoryTimeline CacheKeyType = "grpc:category_timeline_scores"
	cacheKeyTicketMatrix     CacheKeyType = "grpc:ticket_category_matrix"
	cacheKeyOverallScore     CacheKeyType = "grpc:overall_quality_score"
	cacheKeyPeriodCompare    CacheKeyType = "grpc:period_score_comparison"
)

type GRPCHandlers struct {
	pb.UnimplementedTicketMetricsServer
	scoring  ScoringService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(scoring ScoringService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if scoring == nil {
		panic("nil ScoringService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		scoring:  scoring,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func normalizeKey(prefix CacheKeyType, start, end time.Time) string {
	s := start.UTC().Truncate(24 * time.Hour).Format("2006-01-02")
	e := end.UTC().Truncate(24 * time.Hour).Format("2006-01-02")
	return fmt.Sprintf("%s:%s:%s", prefix, s, e)
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, scoring.ErrInvalidRating):
		s.logger.Warn("invalid rating data", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, "rating outside the 0..5 scale")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) GetTicketScore(ctx context.Context, req *pb.GetTicketScoreRequest) (*pb.GetTicketScoreResponse, error) {
	if err := validateTicketID(req.GetTicketId()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := fmt.Sprintf("%s:%d", cacheKeyTicketScore, req.GetTicketId())

	score, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (float64, error) {
		d, err := s.scoring.TicketScore(fetchCtx, req.GetTicketId())
		if err != nil {
			return 0, err
		}
		return d.InexactFloat64(), nil
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetTicketScore", err)
	}

	return &pb.GetTicketScoreResponse{Score: score}, nil
}

func (s *GRPCHandlers) GetCategoryTimelineScores(ctx context.Context, req *pb.TimePeriodRequest) (*pb.CategoryTimelineResponse, error) {
	start, end, err := parsePeriod(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyCategoryTimeline, start, end)

	summaries, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.CategoryScoreSummary, error) {
		return s.scoring.CategoryTimeline(fetchCtx, start, end)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetCategoryTimelineScores", err)
	}

	return &pb.CategoryTimelineResponse{Categories: s.mapToProtoTimelines(summaries)}, nil
}

func (s *GRPCHandlers) GetTicketCategoryMatrix(ctx context.Context, req *pb.TimePeriodRequest) (*pb.TicketCategoryMatrixResponse, error) {
	start, end, err := parsePeriod(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyTicketMatrix, start, end)

	tickets, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.TicketCategoryScores, error) {
		return s.scoring.TicketCategoryMatrix(fetchCtx, start, end)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetTicketCategoryMatrix", err)
	}

	pbTickets := make([]*pb.TicketCategoryScores, len(tickets))
	for i, t := range tickets {
		scores := make([]*pb.CategoryScore, len(t.Scores))
		for j, cs := range t.Scores {
			scores[j] = &pb.CategoryScore{
				CategoryId: cs.CategoryID,
				Score:      cs.Score.InexactFloat64(),
			}
		}
		pbTickets[i] = &pb.TicketCategoryScores{
			TicketId: t.TicketID,
			Scores:   scores,
		}
	}

	return &pb.TicketCategoryMatrixResponse{Tickets: pbTickets}, nil
}

func (s *GRPCHandlers) GetOverallQualityScore(ctx context.Context, req *pb.TimePeriodRequest) (*pb.OverallQualityScoreResponse, error) {
	start, end, err := parsePeriod(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyOverallScore, start, end)

	score, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (float64, error) {
		d, err := s.scoring.OverallScore(fetchCtx, start, end)
		if err != nil {
			return 0, err
		}
		return d.InexactFloat64(), nil
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetOverallQualityScore", err)
	}

	return &pb.OverallQualityScoreResponse{Score: score}, nil
}

func (s *GRPCHandlers) ComparePeriodScores(ctx context.Context, req *pb.ComparePeriodsRequest) (*pb.ComparePeriodsResponse, error) {
	curStart, curEnd, err := parseWindow("current", req.GetCurrentStart(), req.GetCurrentEnd())
	if err != nil {
		return nil, err
	}

	// Blank previous window means "the window of equal duration
	// immediately preceding the current one".
	derivePrevious := strings.TrimSpace(req.GetPreviousStart()) == "" && strings.TrimSpace(req.GetPreviousEnd()) == ""

	var prevStart, prevEnd time.Time
	if !derivePrevious {
		prevStart, prevEnd, err = parseWindow("previous", req.GetPreviousStart(), req.GetPreviousEnd())
		if err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	// Window scores depend only on calendar dates, derivation included,
	// so date-precision keys are exact.
	cacheKey := normalizeKey(cacheKeyPeriodCompare, curStart, curEnd)
	if !derivePrevious {
		cacheKey += ":" + normalizeKey("vs", prevStart, prevEnd)
	}

	change, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.PeriodChange, error) {
		if derivePrevious {
			return s.scoring.ComparePreviousPeriod(fetchCtx, curStart, curEnd)
		}
		return s.scoring.ComparePeriods(fetchCtx, curStart, curEnd, prevStart, prevEnd)
	})
	if err != nil {
		return nil, s.handleError(ctx, "ComparePeriodScores", err)
	}

	return &pb.ComparePeriodsResponse{
		CurrentPeriodScore:  change.CurrentScore.InexactFloat64(),
		PreviousPeriodScore: change.PreviousScore.InexactFloat64(),
		ScoreChange:         change.Change.InexactFloat64(),
	}, nil
}

func (s *GRPCHandlers) mapToProtoTimelines(summaries []service.CategoryScoreSummary) []*pb.CategoryTimeline {
	out := make([]*pb.CategoryTimeline, len(summaries))
	for i, cat := range summaries {
		points := make([]*pb.TimelinePoint, len(cat.Timeline))
		for j, p := range cat.Timeline {
			points[j] = &pb.TimelinePoint{
				BucketStart: p.BucketStart.Format("2006-01-02"),
				Score:       p.Score.InexactFloat64(),
			}
		}
		out[i] = &pb.CategoryTimeline{
			CategoryId:   cat.CategoryID,
			RatingsCount: cat.RatingsCount,
			AverageScore: cat.AverageScore.InexactFloat64(),
			Timeline:     points,
		}
	}
	return out
}
