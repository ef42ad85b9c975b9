// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/postwright/internal/config"
	"github.com/tomtom215/postwright/internal/models"
)

// testDBSemaphore serializes DuckDB tests; concurrent CGO connections can
// hang under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB opens an in-memory DuckDB store. The semaphore is held for the
// whole test and released by t.Cleanup.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	type result struct {
		db  *DB
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		db, err := New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB", Threads: 1})
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 120s")
		return nil
	}
}

func TestStore_CollectedPostRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 6, 8, 15, 0, 0, time.UTC)

	first := &models.CollectedPost{
		ProfileName: "ada", PostURL: "https://example.com/p/1",
		Content: "Hello #go", PublishDate: at, Likes: 1, CollectedAt: at,
	}
	untimed := &models.CollectedPost{ProfileName: "bob", PostURL: "https://example.com/p/2", CollectedAt: at}

	for _, p := range []*models.CollectedPost{first, untimed} {
		if _, err := db.UpsertCollectedPost(ctx, p); err != nil {
			t.Fatalf("UpsertCollectedPost(%s) error = %v", p.PostURL, err)
		}
	}

	// Re-collection overwrites counters in place.
	recollected := *first
	recollected.Likes = 40
	recollected.Comments = 2
	id, err := db.UpsertCollectedPost(ctx, &recollected)
	if err != nil {
		t.Fatalf("re-collect error = %v", err)
	}
	if id != first.ID {
		t.Errorf("re-collected id = %d, want %d", id, first.ID)
	}

	posts, err := db.ListCollectedPosts(ctx)
	if err != nil {
		t.Fatalf("ListCollectedPosts() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].TotalEngagement() != 42 || !posts[0].PublishDate.Equal(at) {
		t.Errorf("first post = %+v", posts[0])
	}
	if posts[1].Content != "" || !posts[1].PublishDate.IsZero() {
		t.Errorf("untimed post = %+v", posts[1])
	}

	n, err := db.CountCollectedPosts(ctx)
	if err != nil || n != 2 {
		t.Errorf("CountCollectedPosts() = %d, %v", n, err)
	}
}

func TestStore_GeneratedPostLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	post := &models.GeneratedPost{Content: "Draft about Go", Hashtags: "#go", Topic: "go"}
	id, err := db.InsertGeneratedPost(ctx, post)
	if err != nil {
		t.Fatalf("InsertGeneratedPost() error = %v", err)
	}

	when := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	if err := db.SchedulePost(ctx, id, when); err != nil {
		t.Fatalf("SchedulePost() error = %v", err)
	}
	if err := db.UpdateFeedback(ctx, id, 4, "solid"); err != nil {
		t.Fatalf("UpdateFeedback() error = %v", err)
	}
	if err := db.MarkPublished(ctx, id); err != nil {
		t.Fatalf("MarkPublished() error = %v", err)
	}

	got, err := db.GetGeneratedPost(ctx, id)
	if err != nil {
		t.Fatalf("GetGeneratedPost() error = %v", err)
	}
	if !got.Published || got.FeedbackScore == nil || *got.FeedbackScore != 4 || got.FeedbackText != "solid" {
		t.Errorf("lifecycle not persisted: %+v", got)
	}
	if got.ScheduledTime == nil || !got.ScheduledTime.Equal(when) {
		t.Errorf("ScheduledTime = %v, want %v", got.ScheduledTime, when)
	}

	counts, err := db.FeedbackScoreCounts(ctx)
	if err != nil || counts[4] != 1 {
		t.Errorf("FeedbackScoreCounts() = %v, %v", counts, err)
	}

	if err := db.UpdateFeedback(ctx, id+100, 3, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateFeedback(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStore_Metrics(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, v := range []float64{10, 20, 30} {
		if err := db.RecordMetric(ctx, "post_count", v, base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("RecordMetric() error = %v", err)
		}
	}
	if err := db.RecordMetric(ctx, "avg_total_engagement", 5.5, base); err != nil {
		t.Fatalf("RecordMetric() error = %v", err)
	}

	latest, err := db.ListMetrics(ctx, "post_count", 2)
	if err != nil {
		t.Fatalf("ListMetrics() error = %v", err)
	}
	if len(latest) != 2 || latest[0].Value != 30 || latest[1].Value != 20 {
		t.Errorf("latest = %+v", latest)
	}

	all, err := db.ListMetrics(ctx, "", 0)
	if err != nil || len(all) != 4 {
		t.Errorf("ListMetrics(all) = %d rows, %v", len(all), err)
	}
}
