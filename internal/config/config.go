// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port     string
	Env      string // "development", "staging", "production"
	LogLevel string

	// Live feed
	FeedInterval time.Duration // time between synthesized feed events
	FeedCapacity int           // max entries retained, newest first
	FeedWarmup   int           // entries synthesized before the ticker starts

	// Sample data
	SampleSize int // transactions fabricated per ledger request

	// Rate limiting
	RateLimitRPM int

	// Observability
	OTLPEndpoint string // OTLP gRPC endpoint; tracing disabled when empty
}

// Defaults mirror the dashboard's original timing and sizing constants.
const (
	DefaultPort         = "8080"
	DefaultEnv          = "development"
	DefaultLogLevel     = "info"
	DefaultFeedInterval = 5 * time.Second
	DefaultFeedCapacity = 10
	DefaultFeedWarmup   = 5
	DefaultSampleSize   = 21
	DefaultRateLimit    = 120
)

// Load reads configuration from environment variables. A .env file is loaded
// first when present (local development).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", DefaultPort),
		Env:          getEnv("ENV", DefaultEnv),
		LogLevel:     getEnv("LOG_LEVEL", DefaultLogLevel),
		FeedInterval: getEnvDuration("FEED_INTERVAL", DefaultFeedInterval),
		FeedCapacity: getEnvInt("FEED_CAPACITY", DefaultFeedCapacity),
		FeedWarmup:   getEnvInt("FEED_WARMUP", DefaultFeedWarmup),
		SampleSize:   getEnvInt("SAMPLE_SIZE", DefaultSampleSize),
		RateLimitRPM: getEnvInt("RATE_LIMIT_RPM", DefaultRateLimit),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.FeedInterval <= 0 {
		return fmt.Errorf("FEED_INTERVAL must be positive, got %s", c.FeedInterval)
	}
	if c.FeedCapacity <= 0 {
		return fmt.Errorf("FEED_CAPACITY must be positive, got %d", c.FeedCapacity)
	}
	if c.FeedWarmup < 0 || c.FeedWarmup > c.FeedCapacity {
		return fmt.Errorf("FEED_WARMUP must be in [0, FEED_CAPACITY], got %d", c.FeedWarmup)
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("SAMPLE_SIZE must be positive, got %d", c.SampleSize)
	}
	if c.RateLimitRPM <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPM must be positive, got %d", c.RateLimitRPM)
	}
	return nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
