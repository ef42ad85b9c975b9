// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/postwright/internal/recommend"
)

// Analyzer runs one analysis pass. Snapshot recording happens inside the
// pass when the synthesizer has a metric recorder.
type Analyzer interface {
	Analyze(ctx context.Context) (*recommend.Report, error)
}

// SnapshotServiceConfig holds the refresher schedule.
type SnapshotServiceConfig struct {
	// Interval between passes. Zero or negative means 1h.
	Interval time.Duration

	// RunOnStartup triggers a pass as soon as the service starts.
	RunOnStartup bool

	// PassTimeout bounds a single pass. Default: 5m
	PassTimeout time.Duration
}

// SnapshotService periodically runs an analysis pass so the analytics table
// keeps a headline-metric history even when no client asks for one.
type SnapshotService struct {
	analyzer Analyzer
	config   SnapshotServiceConfig
	logger   zerolog.Logger
	name     string
}

// NewSnapshotService creates the refresher.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSnapshotService(analyzer Analyzer, cfg SnapshotServiceConfig, logger zerolog.Logger) *SnapshotService {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.PassTimeout <= 0 {
		cfg.PassTimeout = 5 * time.Minute
	}
	return &SnapshotService{
		analyzer: analyzer,
		config:   cfg,
		logger:   logger.With().Str("service", "snapshot").Logger(),
		name:     "snapshot-service",
	}
}

// Serve implements suture.Service. A failed pass is logged and retried on
// the next tick; it never restarts the service.
func (s *SnapshotService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Bool("run_on_startup", s.config.RunOnStartup).
		Msg("snapshot service starting")

	if s.config.RunOnStartup {
		s.pass(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("snapshot service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.pass(ctx)
		}
	}
}

func (s *SnapshotService) pass(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, s.config.PassTimeout)
	defer cancel()

	start := time.Now()
	report, err := s.analyzer.Analyze(passCtx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("scheduled analysis pass failed")
		return
	}
	s.logger.Debug().
		Str("status", string(report.Status)).
		Int("posts", report.PostCount).
		Dur("duration", time.Since(start)).
		Msg("scheduled analysis pass complete")
}

// String names the service in supervisor events.
func (s *SnapshotService) String() string {
	return s.name
}
