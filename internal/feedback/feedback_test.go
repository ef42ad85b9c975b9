// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package feedback

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/postwright/internal/database"
	"github.com/tomtom215/postwright/internal/logging"
	"github.com/tomtom215/postwright/internal/models"
)

type fakeStore struct {
	updated  map[int64]int
	known    map[int64]bool
	rated    []models.GeneratedPost
	counts   map[int]int
	err      error
	gotLimit int
}

func newFakeStore() *fakeStore {
	return &fakeStore{updated: map[int64]int{}, known: map[int64]bool{1: true}}
}

func (f *fakeStore) UpdateFeedback(ctx context.Context, id int64, score int, text string) error {
	if f.err != nil {
		return f.err
	}
	if !f.known[id] {
		return database.ErrNotFound
	}
	f.updated[id] = score
	return nil
}

func (f *fakeStore) ListRatedPosts(ctx context.Context, limit int) ([]models.GeneratedPost, error) {
	f.gotLimit = limit
	return f.rated, f.err
}

func (f *fakeStore) FeedbackScoreCounts(ctx context.Context) (map[int]int, error) {
	return f.counts, f.err
}

func newTestService(store Store) *Service {
	return NewService(store, logging.NewTestLogger(&bytes.Buffer{}))
}

func TestRecordFeedback_ScoreRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score   int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{3, false},
		{5, false},
		{6, true},
		{-2, true},
	}

	for _, tt := range tests {
		store := newFakeStore()
		err := newTestService(store).RecordFeedback(context.Background(), 1, tt.score, "")
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidScore) {
				t.Errorf("score %d: error = %v, want ErrInvalidScore", tt.score, err)
			}
			if len(store.updated) != 0 {
				t.Errorf("score %d: store was written", tt.score)
			}
			continue
		}
		if err != nil {
			t.Errorf("score %d: unexpected error %v", tt.score, err)
		}
		if store.updated[1] != tt.score {
			t.Errorf("score %d: stored %d", tt.score, store.updated[1])
		}
	}
}

func TestRecordFeedback_MissingPost(t *testing.T) {
	t.Parallel()

	err := newTestService(newFakeStore()).RecordFeedback(context.Background(), 404, 4, "nice")
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("error = %v, want database.ErrNotFound", err)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.counts = map[int]int{1: 1, 4: 2, 5: 1}

	got, err := newTestService(store).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if got.TotalFeedback != 4 {
		t.Errorf("TotalFeedback = %d, want 4", got.TotalFeedback)
	}
	if got.AverageScore != 3.5 {
		t.Errorf("AverageScore = %v, want 3.5", got.AverageScore)
	}
	want := map[int]int{1: 1, 2: 0, 3: 0, 4: 2, 5: 1}
	for score, n := range want {
		if got.Distribution[score] != n {
			t.Errorf("Distribution[%d] = %d, want %d", score, got.Distribution[score], n)
		}
	}
}

func TestSummary_NoFeedback(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.counts = map[int]int{}

	got, err := newTestService(store).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if got.TotalFeedback != 0 || got.AverageScore != 0 || len(got.Distribution) != 5 {
		t.Errorf("unexpected empty summary: %+v", got)
	}
}

func TestSummary_StoreError(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.err = errors.New("db down")

	got, err := newTestService(store).Summary(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if got == nil || len(got.Distribution) != 5 {
		t.Errorf("summary must stay usable on error: %+v", got)
	}
}

func TestHistory(t *testing.T) {
	t.Parallel()

	four := 4
	store := newFakeStore()
	store.rated = []models.GeneratedPost{
		{ID: 2, Content: "B", GeneratedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), FeedbackScore: &four, FeedbackText: "good"},
		{ID: 3, Content: "unrated"},
	}

	svc := newTestService(store)
	entries, err := svc.History(context.Background(), 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if store.gotLimit != DefaultHistoryLimit {
		t.Errorf("limit = %d, want %d", store.gotLimit, DefaultHistoryLimit)
	}
	if len(entries) != 1 || entries[0].ID != 2 || entries[0].FeedbackScore != 4 {
		t.Errorf("entries = %+v", entries)
	}
	if entries[0].GeneratedAt != "2024-02-01T00:00:00Z" {
		t.Errorf("GeneratedAt = %q", entries[0].GeneratedAt)
	}

	if _, err := svc.History(context.Background(), 3); err != nil || store.gotLimit != 3 {
		t.Errorf("explicit limit not passed through: %d, %v", store.gotLimit, err)
	}
}
