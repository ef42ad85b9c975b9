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

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/postwright/internal/config"
	"github.com/tomtom215/postwright/internal/models"
)

type stubLister struct {
	err   error
	calls int
}

func (s *stubLister) ListCollectedPosts(ctx context.Context) ([]models.CollectedPost, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []models.CollectedPost{{ID: 1, Content: "ok"}}, nil
}

func breakerConfig(threshold uint32) *config.BreakerConfig {
	return &config.BreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Hour,
		FailureThreshold: threshold,
	}
}

func TestGuardedSource_PassesThrough(t *testing.T) {
	stub := &stubLister{}
	g := NewGuardedSource(stub, breakerConfig(3))

	posts, err := g.ListCollectedPosts(context.Background())
	if err != nil {
		t.Fatalf("ListCollectedPosts() error = %v", err)
	}
	if len(posts) != 1 || stub.calls != 1 {
		t.Errorf("posts = %v, calls = %d", posts, stub.calls)
	}
	if g.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed", g.State())
	}
}

func TestGuardedSource_OpensAfterConsecutiveFailures(t *testing.T) {
	boom := errors.New("database locked")
	stub := &stubLister{err: boom}
	g := NewGuardedSource(stub, breakerConfig(2))

	for i := 0; i < 2; i++ {
		if _, err := g.ListCollectedPosts(context.Background()); !errors.Is(err, boom) {
			t.Fatalf("call %d error = %v, want %v", i, err, boom)
		}
	}
	if g.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v, want open", g.State())
	}

	_, err := g.ListCollectedPosts(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want ErrOpenState", err)
	}
	if stub.calls != 2 {
		t.Errorf("source called %d times while open, want 2", stub.calls)
	}
}

func TestGuardedSource_CancellationDoesNotTrip(t *testing.T) {
	stub := &stubLister{err: context.Canceled}
	g := NewGuardedSource(stub, breakerConfig(1))

	for i := 0; i < 3; i++ {
		_, _ = g.ListCollectedPosts(context.Background())
	}
	if g.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed", g.State())
	}
	if stub.calls != 3 {
		t.Errorf("calls = %d, want 3", stub.calls)
	}
}
