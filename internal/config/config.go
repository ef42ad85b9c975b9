// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

// Package config loads Postwright configuration from struct defaults, an
// optional YAML file and environment variables, in that order of priority.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Legacy   LegacyConfig   `koanf:"legacy"`
	Analysis AnalysisConfig `koanf:"analysis"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds DuckDB settings for the post store.
type DatabaseConfig struct {
	Path      string `koanf:"path" validate:"required"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads" validate:"gte=0"` // 0 = use runtime.NumCPU()
}

// LegacyConfig points at the SQLite database written by the original
// collector, used only by the import command.
type LegacyConfig struct {
	Path string `koanf:"path"`
}

// AnalysisConfig tunes the analysis pass. Policy thresholds are constants in
// the analysis and recommend packages and are deliberately absent here.
type AnalysisConfig struct {
	TopPostsLimit       int   `koanf:"top_posts_limit" validate:"gte=1,lte=100"`
	ClusterSeed         int64 `koanf:"cluster_seed"`
	MaxClusters         int   `koanf:"max_clusters" validate:"gte=1,lte=50"`
	MaxVocabulary       int   `koanf:"max_vocabulary" validate:"gte=2,lte=10000"`
	KMeansRestarts      int   `koanf:"kmeans_restarts" validate:"gte=1,lte=100"`
	KMeansMaxIterations int   `koanf:"kmeans_max_iterations" validate:"gte=1"`
	RecordSnapshots     bool  `koanf:"record_snapshots"`

	// SnapshotInterval schedules an extra analysis pass under "serve" so
	// snapshots accrue without client traffic. 0, the default, disables it.
	SnapshotInterval time.Duration `koanf:"snapshot_interval" validate:"gte=0"`

	// SnapshotOnStartup runs the first scheduled pass as soon as serve
	// starts instead of after one interval.
	SnapshotOnStartup bool `koanf:"snapshot_on_startup"`
}

// BreakerConfig configures the circuit breaker around storage reads.
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"gte=1"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port" validate:"gte=1,lte=65535"`
	Timeout           time.Duration `koanf:"timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}
