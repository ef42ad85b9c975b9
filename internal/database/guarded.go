// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package database

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/postwright/internal/config"
	"github.com/tomtom215/postwright/internal/logging"
	"github.com/tomtom215/postwright/internal/metrics"
	"github.com/tomtom215/postwright/internal/models"
)

// PostLister is the read the analysis engine performs against the store.
type PostLister interface {
	ListCollectedPosts(ctx context.Context) ([]models.CollectedPost, error)
}

// GuardedSource wraps a PostLister with a circuit breaker. While the breaker
// is open, reads fail immediately with gobreaker.ErrOpenState.
//
// The breaker uses real time for its interval and timeout; tests exercise it
// through failure counts rather than by waiting for recovery.
type GuardedSource struct {
	source PostLister
	cb     *gobreaker.CircuitBreaker[[]models.CollectedPost]
	name   string
}

// NewGuardedSource creates a guarded reader. The breaker opens after
// cfg.FailureThreshold consecutive failures. Caller cancellation is not
// counted as a storage failure.
func NewGuardedSource(source PostLister, cfg *config.BreakerConfig) *GuardedSource {
	name := "post-store"
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	metrics.SetBreakerState(name, stateToInt(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[[]models.CollectedPost](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= threshold
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.SetBreakerState(name, stateToInt(to))
			metrics.RecordBreakerTransition(name, from.String(), to.String())
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &GuardedSource{source: source, cb: cb, name: name}
}

// ListCollectedPosts reads through the breaker.
func (g *GuardedSource) ListCollectedPosts(ctx context.Context) ([]models.CollectedPost, error) {
	posts, err := g.cb.Execute(func() ([]models.CollectedPost, error) {
		return g.source.ListCollectedPosts(ctx)
	})
	if err != nil && (errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)) {
		logging.Warn().Err(err).Str("breaker", g.name).Msg("[CIRCUIT BREAKER] Request rejected")
	}
	return posts, err
}

// State returns the current breaker state.
func (g *GuardedSource) State() gobreaker.State {
	return g.cb.State()
}

// stateToInt maps breaker states for the state gauge.
func stateToInt(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
