// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load(ctx) layers file/env.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
	"time"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SnapshotTTL bounds how long a cached candidate snapshot stays fresh.
	SnapshotTTL time.Duration `koanf:"snapshot_ttl"`

	// MonitorInterval spaces risk-monitor polls of the watch list.
	MonitorInterval time.Duration `koanf:"monitor_interval"`

	// FetchTimeout caps each per-provider fetch inside an aggregation.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`

	// AggregationConcurrency bounds simultaneous candidate aggregations
	// across searches and monitor ticks.
	AggregationConcurrency int `koanf:"aggregation_concurrency"`

	// AlertBuffer sets the default per-subscriber alert channel buffer.
	AlertBuffer int `koanf:"alert_buffer"`

	// IndexShards configures the number of shards in the talent index.
	IndexShards int `koanf:"index_shards"`

	// DedupeSize bounds the alert fingerprint cache.
	DedupeSize int `koanf:"dedupe_size"`

	// SubScoreDelta is the per-provider sub-score movement that counts as
	// a material change when monitoring.
	SubScoreDelta float64 `koanf:"sub_score_delta"`

	// ActivityDelta is the activity-count movement that counts as a
	// material change when monitoring.
	ActivityDelta int `koanf:"activity_delta"`

	// MaxTopLimit caps GET /talent/top?limit.
	MaxTopLimit int `koanf:"max_top_limit"`

	// PostgresDSN enables pgx-backed stores when non-empty; empty keeps
	// the in-memory stores.
	PostgresDSN string `koanf:"postgres_dsn"`

	// Weights overrides the scoring weight table: dimension -> provider ->
	// weight. Empty means the built-in defaults.
	Weights map[string]map[string]float64 `koanf:"weights"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		Addr:                   ":9080",
		SnapshotTTL:            24 * time.Hour,
		MonitorInterval:        6 * time.Hour,
		FetchTimeout:           10 * time.Second,
		AggregationConcurrency: runtime.NumCPU() * 4,
		AlertBuffer:            64,
		IndexShards:            8,
		DedupeSize:             10_000,
		SubScoreDelta:          1.5,
		ActivityDelta:          3,
		MaxTopLimit:            100,
	}
}
