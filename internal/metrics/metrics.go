// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

// Package metrics defines the Prometheus instruments for Postwright:
// DuckDB query latency, analysis passes and their stages, the storage
// circuit breaker, HTTP traffic, feedback and legacy imports.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postwright_duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postwright_duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// Analysis Metrics
	AnalysisRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postwright_analysis_runs_total",
			Help: "Total number of analysis passes by outcome status",
		},
		[]string{"status"}, // "ok", "no_data", "storage_error"
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "postwright_analysis_duration_seconds",
			Help:    "Wall time of a complete analysis pass",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	AnalysisStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postwright_analysis_stage_duration_seconds",
			Help:    "Duration of each analysis stage",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"stage"}, // "load", "features", "engagement", "structure", "topics", "timing", "top_posts"
	)

	AnalysisPostsAnalyzed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "postwright_analysis_posts",
			Help: "Number of collected posts in the most recent analysis pass",
		},
	)

	AnalysisTopicClusters = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "postwright_analysis_topic_clusters",
			Help: "Number of topic clusters produced by the most recent analysis pass",
		},
	)

	// Storage Circuit Breaker Metrics
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "postwright_storage_breaker_state",
			Help: "Storage circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	BreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postwright_storage_breaker_transitions_total",
			Help: "Storage circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postwright_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postwright_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Feedback and Import Metrics
	FeedbackRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postwright_feedback_recorded_total",
			Help: "Feedback scores recorded for generated posts",
		},
		[]string{"score"},
	)

	LegacyImportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postwright_legacy_import_rows_total",
			Help: "Rows processed by the legacy SQLite import",
		},
		[]string{"outcome"}, // "imported", "skipped"
	)
)

// RecordDBQuery records a database query metric.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAnalysisRun records the outcome of one analysis pass.
func RecordAnalysisRun(status string, posts, clusters int, duration time.Duration) {
	AnalysisRuns.WithLabelValues(status).Inc()
	AnalysisDuration.Observe(duration.Seconds())
	AnalysisPostsAnalyzed.Set(float64(posts))
	AnalysisTopicClusters.Set(float64(clusters))
}

// ObserveStage records the duration of one analysis stage.
func ObserveStage(stage string, duration time.Duration) {
	AnalysisStageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// SetBreakerState publishes the numeric state of a circuit breaker.
func SetBreakerState(name string, state int) {
	BreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordBreakerTransition counts one circuit breaker state change.
func RecordBreakerTransition(name, from, to string) {
	BreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordFeedback counts a recorded feedback score.
func RecordFeedback(score int) {
	FeedbackRecorded.WithLabelValues(strconv.Itoa(score)).Inc()
}

// RecordLegacyImport adds the row counts of one import run.
func RecordLegacyImport(imported, skipped int) {
	LegacyImportRows.WithLabelValues("imported").Add(float64(imported))
	LegacyImportRows.WithLabelValues("skipped").Add(float64(skipped))
}
