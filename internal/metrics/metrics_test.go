// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func histogramCount(t *testing.T, observe func() *dto.Metric) uint64 {
	t.Helper()
	m := observe()
	if m.GetHistogram() == nil {
		t.Fatal("metric is not a histogram")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "posts"))

	RecordDBQuery("SELECT", "posts", 5*time.Millisecond, nil)
	RecordDBQuery("SELECT", "posts", 5*time.Millisecond, errors.New("connection refused"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "posts"))
	if after-before != 1 {
		t.Errorf("expected one error increment, got %v", after-before)
	}
}

func TestRecordAnalysisRun(t *testing.T) {
	before := testutil.ToFloat64(AnalysisRuns.WithLabelValues("ok"))

	RecordAnalysisRun("ok", 12, 3, 20*time.Millisecond)

	if got := testutil.ToFloat64(AnalysisRuns.WithLabelValues("ok")) - before; got != 1 {
		t.Errorf("runs increment = %v, want 1", got)
	}
	if got := testutil.ToFloat64(AnalysisPostsAnalyzed); got != 12 {
		t.Errorf("posts gauge = %v, want 12", got)
	}
	if got := testutil.ToFloat64(AnalysisTopicClusters); got != 3 {
		t.Errorf("clusters gauge = %v, want 3", got)
	}
}

func TestObserveStage(t *testing.T) {
	read := func() *dto.Metric {
		m := &dto.Metric{}
		if err := AnalysisStageDuration.WithLabelValues("topics").(prometheus.Metric).Write(m); err != nil {
			t.Fatalf("write metric: %v", err)
		}
		return m
	}

	before := histogramCount(t, read)
	ObserveStage("topics", time.Millisecond)
	ObserveStage("topics", 2*time.Millisecond)

	if got := histogramCount(t, read) - before; got != 2 {
		t.Errorf("sample count increment = %d, want 2", got)
	}
}

func TestBreakerMetrics(t *testing.T) {
	SetBreakerState("posts", 2)
	if got := testutil.ToFloat64(BreakerState.WithLabelValues("posts")); got != 2 {
		t.Errorf("breaker state = %v, want 2", got)
	}

	before := testutil.ToFloat64(BreakerTransitions.WithLabelValues("posts", "closed", "open"))
	RecordBreakerTransition("posts", "closed", "open")
	if got := testutil.ToFloat64(BreakerTransitions.WithLabelValues("posts", "closed", "open")) - before; got != 1 {
		t.Errorf("transition increment = %v, want 1", got)
	}
}

func TestRecordFeedbackAndImport(t *testing.T) {
	beforeFeedback := testutil.ToFloat64(FeedbackRecorded.WithLabelValues("4"))
	RecordFeedback(4)
	if got := testutil.ToFloat64(FeedbackRecorded.WithLabelValues("4")) - beforeFeedback; got != 1 {
		t.Errorf("feedback increment = %v, want 1", got)
	}

	beforeImported := testutil.ToFloat64(LegacyImportRows.WithLabelValues("imported"))
	beforeSkipped := testutil.ToFloat64(LegacyImportRows.WithLabelValues("skipped"))
	RecordLegacyImport(10, 2)
	if got := testutil.ToFloat64(LegacyImportRows.WithLabelValues("imported")) - beforeImported; got != 10 {
		t.Errorf("imported increment = %v, want 10", got)
	}
	if got := testutil.ToFloat64(LegacyImportRows.WithLabelValues("skipped")) - beforeSkipped; got != 2 {
		t.Errorf("skipped increment = %v, want 2", got)
	}
}
