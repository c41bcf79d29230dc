// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the time conversion service.
// Environment variables are parsed from the TIMECONV_ prefix, for
// example TIMECONV_HTTP_PORT or TIMECONV_HISTORY_PATH.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Default zones applied when a request leaves them empty.
	SourceZone string `envconfig:"SOURCE_ZONE" default:"UTC"`
	TargetZone string `envconfig:"TARGET_ZONE" default:"UTC"`

	// Batch tuning. Parallelism 0 means one worker per CPU.
	BatchParallelism         int `envconfig:"BATCH_PARALLELISM" default:"0"`
	BatchSequentialThreshold int `envconfig:"BATCH_SEQUENTIAL_THRESHOLD" default:"16"`

	// Live re-evaluation period in milliseconds.
	LiveTickMillis int `envconfig:"LIVE_TICK_MILLIS" default:"1000"`

	// History persistence. The recorder is disabled unless a path is
	// configured and HistoryEnabled is true.
	HistoryEnabled bool   `envconfig:"HISTORY_ENABLED" default:"false"`
	HistoryPath    string `envconfig:"HISTORY_PATH" default:""`
	HistorySize    int    `envconfig:"HISTORY_SIZE" default:"200"`
}

// ResolveDefaults validates the parsed values and fills in anything
// derivable. Zones are resolved lazily by the engine, so only the
// numeric knobs are checked here.
func (c *Config) ResolveDefaults() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("unsupported HTTP_PORT: %d", c.HTTPPort)
	}
	if c.BatchParallelism < 0 {
		return fmt.Errorf("unsupported BATCH_PARALLELISM: %d", c.BatchParallelism)
	}
	if c.BatchSequentialThreshold < 1 {
		return fmt.Errorf("unsupported BATCH_SEQUENTIAL_THRESHOLD: %d", c.BatchSequentialThreshold)
	}
	if c.LiveTickMillis < 1 {
		return fmt.Errorf("unsupported LIVE_TICK_MILLIS: %d", c.LiveTickMillis)
	}
	if c.SourceZone == "" {
		c.SourceZone = "UTC"
	}
	if c.TargetZone == "" {
		c.TargetZone = "UTC"
	}
	if c.HistorySize < 1 {
		c.HistorySize = 200
	}
	if c.HistoryEnabled && c.HistoryPath == "" {
		return fmt.Errorf("TIMECONV_HISTORY_ENABLED requires TIMECONV_HISTORY_PATH")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: TIMECONV_HTTP_PORT=9090 TIMECONV_TARGET_ZONE=Asia/Tokyo
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("TIMECONV", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Int("port", cfg.HTTPPort).
		Str("source_zone", cfg.SourceZone).
		Str("target_zone", cfg.TargetZone).
		Int("batch_parallelism", cfg.BatchParallelism).
		Int("batch_sequential_threshold", cfg.BatchSequentialThreshold).
		Int("live_tick_millis", cfg.LiveTickMillis).
		Bool("history_enabled", cfg.HistoryEnabled).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config with fixed values for tests.
func NewForTesting() *Config {
	return &Config{
		HTTPPort:                 8080,
		SourceZone:               "UTC",
		TargetZone:               "UTC",
		BatchSequentialThreshold: 16,
		LiveTickMillis:           1000,
		HistorySize:              200,
	}
}
