// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/postwright/internal/analysis"
	"github.com/tomtom215/postwright/internal/logging"
	"github.com/tomtom215/postwright/internal/metrics"
	"github.com/tomtom215/postwright/internal/models"
)

// ErrStorageUnavailable is returned (wrapped) when the post snapshot could
// not be read. The accompanying result is still usable and empty.
var ErrStorageUnavailable = errors.New("post storage unavailable")

// Status classifies the outcome of an analysis pass.
type Status string

const (
	StatusOK           Status = "ok"
	StatusNoData       Status = "no_data"
	StatusStorageError Status = "storage_error"
)

// PostSource is the read-only query capability the analysis consumes.
// Each call returns a fresh full snapshot.
type PostSource interface {
	ListCollectedPosts(ctx context.Context) ([]models.CollectedPost, error)
}

// MetricRecorder persists headline metrics after a successful pass.
type MetricRecorder interface {
	RecordMetric(ctx context.Context, name string, value float64, at time.Time) error
}

// Snapshot metric names written through MetricRecorder.
const (
	MetricAvgTotalEngagement    = "avg_total_engagement"
	MetricMedianTotalEngagement = "median_total_engagement"
	MetricPostCount             = "post_count"
	MetricTopicClusterCount     = "topic_cluster_count"
)

// Report is the full result of one analysis pass.
type Report struct {
	Status          Status                     `json:"status"`
	PostCount       int                        `json:"post_count"`
	Engagement      analysis.EngagementMetrics `json:"engagement"`
	Structure       analysis.StructureAnalysis `json:"structure"`
	Topics          analysis.TopicAnalysis     `json:"topics"`
	Timing          analysis.TimingAnalysis    `json:"timing"`
	TopPosts        []analysis.TopPost         `json:"top_posts"`
	Recommendations RecommendationSet          `json:"recommendations"`
}

// Synthesizer runs the analysis components over a fresh snapshot of
// collected posts and turns their results into recommendations.
// Nothing is cached between calls. It is safe for concurrent use.
type Synthesizer struct {
	source   PostSource
	recorder MetricRecorder
	config   Config
	logger   zerolog.Logger
	now      func() time.Time
}

// NewSynthesizer creates a Synthesizer reading from source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSynthesizer(source PostSource, cfg *Config, logger zerolog.Logger) (*Synthesizer, error) {
	if source == nil {
		return nil, errors.New("post source is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := *cfg
	if c.Topics.Seed == 0 {
		c.Topics.Seed = 42
	}

	return &Synthesizer{
		source: source,
		config: c,
		logger: logger.With().Str("component", "recommend").Logger(),
		now:    time.Now,
	}, nil
}

// SetMetricRecorder attaches a recorder for post-pass snapshots.
// Must be called before the Synthesizer is shared.
func (s *Synthesizer) SetMetricRecorder(r MetricRecorder) {
	s.recorder = r
}

// Config returns a copy of the effective configuration.
func (s *Synthesizer) Config() Config {
	return s.config
}

// Analyze runs one full pass. On a storage failure it returns an empty
// report with StatusStorageError together with an error wrapping
// ErrStorageUnavailable; the report is never nil.
func (s *Synthesizer) Analyze(ctx context.Context) (*Report, error) {
	return s.analyze(ctx, s.config.TopPostsLimit)
}

// Recommendations returns the advisory set for the current data. A storage
// failure yields an empty set with StatusStorageError and a wrapped
// ErrStorageUnavailable.
func (s *Synthesizer) Recommendations(ctx context.Context) (RecommendationSet, error) {
	report, err := s.analyze(ctx, s.config.TopPostsLimit)
	return report.Recommendations, err
}

// TopPosts returns the highest-engagement posts. limit <= 0 selects the
// configured default. The result is never padded to limit.
func (s *Synthesizer) TopPosts(ctx context.Context, limit int) ([]analysis.TopPost, error) {
	if limit <= 0 {
		limit = s.config.TopPostsLimit
	}

	logger := logging.Ctx(ctx, s.logger)
	posts, err := s.load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("top posts unavailable, returning empty list")
		return []analysis.TopPost{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return analysis.TopPosts(posts, limit), nil
}

func (s *Synthesizer) analyze(ctx context.Context, topLimit int) (*Report, error) {
	start := time.Now()
	ctx = logging.ContextWithRunID(ctx, logging.NewRunID())
	logger := logging.Ctx(ctx, s.logger)

	posts, err := s.load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("post storage read failed, degrading to empty analysis")
		metrics.RecordAnalysisRun(string(StatusStorageError), 0, 0, time.Since(start))
		return emptyReport(StatusStorageError, s.config.Topics), fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if len(posts) == 0 {
		logger.Info().Msg("no collected posts yet, returning empty analysis")
		metrics.RecordAnalysisRun(string(StatusNoData), 0, 0, time.Since(start))
		return emptyReport(StatusNoData, s.config.Topics), nil
	}

	report := &Report{Status: StatusOK, PostCount: len(posts)}

	var rows []analysis.FeatureRow
	stage(&logger, "features", func() { rows = analysis.ExtractAll(posts) })
	stage(&logger, "engagement", func() { report.Engagement = analysis.ComputeEngagement(posts) })
	stage(&logger, "structure", func() { report.Structure = analysis.AnalyzeStructure(rows) })
	stage(&logger, "topics", func() { report.Topics = analysis.ExtractTopics(posts, s.config.Topics) })
	stage(&logger, "timing", func() { report.Timing = analysis.AnalyzeTiming(rows) })
	stage(&logger, "top_posts", func() { report.TopPosts = analysis.TopPosts(posts, topLimit) })

	report.Recommendations = BuildRecommendations(&report.Structure, &report.Topics, &report.Timing)

	s.recordSnapshot(ctx, &logger, report)

	elapsed := time.Since(start)
	metrics.RecordAnalysisRun(string(StatusOK), len(posts), len(report.Topics.Topics), elapsed)
	logger.Info().
		Int("posts", len(posts)).
		Int("clusters", len(report.Topics.Topics)).
		Int("advisories", len(report.Recommendations.Structure)+len(report.Recommendations.Topics)+len(report.Recommendations.Timing)).
		Dur("duration", elapsed).
		Msg("analysis complete")

	return report, nil
}

func (s *Synthesizer) load(ctx context.Context) ([]models.CollectedPost, error) {
	start := time.Now()
	posts, err := s.source.ListCollectedPosts(ctx)
	metrics.ObserveStage("load", time.Since(start))
	return posts, err
}

func stage(logger *zerolog.Logger, name string, fn func()) {
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	metrics.ObserveStage(name, elapsed)
	logger.Debug().Str("stage", name).Dur("duration", elapsed).Msg("analysis stage complete")
}

// recordSnapshot writes headline metrics. Failures are logged, not returned.
func (s *Synthesizer) recordSnapshot(ctx context.Context, logger *zerolog.Logger, report *Report) {
	if s.recorder == nil || !s.config.RecordSnapshots {
		return
	}

	at := s.now().UTC()
	values := []struct {
		name  string
		value float64
	}{
		{MetricAvgTotalEngagement, report.Engagement.Overall.Total.Mean},
		{MetricMedianTotalEngagement, report.Engagement.Overall.Total.Median},
		{MetricPostCount, float64(report.PostCount)},
		{MetricTopicClusterCount, float64(len(report.Topics.Topics))},
	}
	for _, v := range values {
		if err := s.recorder.RecordMetric(ctx, v.name, v.value, at); err != nil {
			logger.Warn().Err(err).Str("metric", v.name).Msg("failed to record analysis snapshot")
			return
		}
	}
}

func emptyReport(status Status, topics analysis.TopicConfig) *Report {
	return &Report{
		Status:          status,
		Engagement:      analysis.ComputeEngagement(nil),
		Structure:       analysis.AnalyzeStructure(nil),
		Topics:          analysis.ExtractTopics(nil, topics),
		Timing:          analysis.AnalyzeTiming(nil),
		TopPosts:        []analysis.TopPost{},
		Recommendations: emptySet(status),
	}
}
