package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	DBPath                string
	DBDriver              string
	RedisAddr             string
	GRPCPort              int
	GRPCReflectionEnabled bool

	// Aggregate cache: bounds the in-process per-date and per-ticket
	// computation caches.
	CacheMaxEntries int
	CacheTTL        time.Duration

	// WeightsCacheTTL bounds how stale the category weight snapshot
	// may get.
	WeightsCacheTTL time.Duration

	// ResponseCacheTTL applies to the Redis-backed RPC response cache.
	ResponseCacheTTL time.Duration
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		DBPath:                getEnv("DB_PATH", "./data/database.db"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite3"),
		GRPCPort:              getEnvInt("GRPC_PORT", 50051),
		GRPCReflectionEnabled: getEnvBool("GRPC_REFLECTION_ENABLED", false),
		CacheMaxEntries:       getEnvInt("CACHE_MAX_ENTRIES", 1000),
		CacheTTL:              getEnvDuration("CACHE_TTL", 15*time.Minute),
		WeightsCacheTTL:       getEnvDuration("WEIGHTS_CACHE_TTL", time.Hour),
		ResponseCacheTTL:      getEnvDuration("RESPONSE_CACHE_TTL", 10*time.Minute),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
