package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/supportqa/ticket-metrics/api/v1"
	"github.com/supportqa/ticket-metrics/internal/config"
	handler "github.com/supportqa/ticket-metrics/internal/grpc"
	"github.com/supportqa/ticket-metrics/internal/repository"
	"github.com/supportqa/ticket-metrics/internal/service"
	"github.com/supportqa/ticket-metrics/pkg/cache"
	dbbuilder "github.com/supportqa/ticket-metrics/pkg/database"
	grpcsrv "github.com/supportqa/ticket-metrics/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	ratingRepo := repository.NewRatingRepository(dbPool)

	weights := service.NewWeightProvider(ratingRepo, cfg.WeightsCacheTTL)
	caches := service.NewCaches(cfg.CacheMaxEntries, cfg.CacheTTL)
	scoringService := service.NewScoringService(ratingRepo, weights, caches, logger)

	grpcHandlers := handler.NewGRPCHandlers(scoringService, cacheClient, logger, cfg.ResponseCacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterServiceWithHealth(pb.TicketMetrics_ServiceDesc.ServiceName, func(s *grpc.Server) {
		pb.RegisterTicketMetricsServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("grpc shutdown error", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")

	_ = a.logger.Sync()
	return nil
}
