// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

// Package feedback records user ratings of generated posts and summarises
// them. It is independent of the analysis engine and reads only the
// generated_posts table.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/postwright/internal/metrics"
	"github.com/tomtom215/postwright/internal/models"
)

const (
	// MinScore and MaxScore bound a feedback rating.
	MinScore = 1
	MaxScore = 5

	// DefaultHistoryLimit is used when History is called with limit <= 0.
	DefaultHistoryLimit = 10
)

// ErrInvalidScore is returned for ratings outside MinScore..MaxScore.
var ErrInvalidScore = errors.New("feedback score must be between 1 and 5")

// Store is the subset of the post store used for feedback.
type Store interface {
	UpdateFeedback(ctx context.Context, id int64, score int, text string) error
	ListRatedPosts(ctx context.Context, limit int) ([]models.GeneratedPost, error)
	FeedbackScoreCounts(ctx context.Context) (map[int]int, error)
}

// Summary aggregates every recorded rating.
type Summary struct {
	TotalFeedback int `json:"total_feedback"`
	// AverageScore is 0 when nothing has been rated.
	AverageScore float64 `json:"average_score"`
	// Distribution always carries keys MinScore..MaxScore.
	Distribution map[int]int `json:"score_distribution"`
}

// Entry is one rated post in the feedback history.
type Entry struct {
	ID            int64  `json:"id"`
	Content       string `json:"content"`
	Hashtags      string `json:"hashtags"`
	GeneratedAt   string `json:"generated_at"`
	FeedbackScore int    `json:"feedback_score"`
	FeedbackText  string `json:"feedback_text"`
}

// Service records and summarises feedback.
type Service struct {
	store  Store
	logger zerolog.Logger
}

// NewService creates a feedback service.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{store: store, logger: logger.With().Str("component", "feedback").Logger()}
}

// RecordFeedback validates and stores a rating for a generated post. A
// missing post surfaces as database.ErrNotFound.
func (s *Service) RecordFeedback(ctx context.Context, id int64, score int, text string) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}

	if err := s.store.UpdateFeedback(ctx, id, score, text); err != nil {
		s.logger.Error().Err(err).Int64("post_id", id).Msg("Failed to record feedback")
		return err
	}

	metrics.RecordFeedback(score)
	s.logger.Info().Int64("post_id", id).Int("score", score).Msg("Recorded feedback")
	return nil
}

// Summary returns the total count, average and per-score distribution.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	counts, err := s.store.FeedbackScoreCounts(ctx)
	if err != nil {
		return emptySummary(), fmt.Errorf("feedback summary: %w", err)
	}

	summary := emptySummary()
	weighted := 0
	for score, n := range counts {
		if score < MinScore || score > MaxScore {
			s.logger.Warn().Int("score", score).Int("count", n).Msg("Ignoring out-of-range stored score")
			continue
		}
		summary.Distribution[score] = n
		summary.TotalFeedback += n
		weighted += score * n
	}
	if summary.TotalFeedback > 0 {
		summary.AverageScore = float64(weighted) / float64(summary.TotalFeedback)
	}
	return summary, nil
}

// History returns the most recently generated rated posts.
func (s *Service) History(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	posts, err := s.store.ListRatedPosts(ctx, limit)
	if err != nil {
		return []Entry{}, fmt.Errorf("feedback history: %w", err)
	}

	entries := make([]Entry, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		if p.FeedbackScore == nil {
			continue
		}
		entries = append(entries, Entry{
			ID:            p.ID,
			Content:       p.Content,
			Hashtags:      p.Hashtags,
			GeneratedAt:   p.GeneratedAt.UTC().Format(time.RFC3339),
			FeedbackScore: *p.FeedbackScore,
			FeedbackText:  p.FeedbackText,
		})
	}
	return entries, nil
}

func emptySummary() *Summary {
	dist := make(map[int]int, MaxScore)
	for score := MinScore; score <= MaxScore; score++ {
		dist[score] = 0
	}
	return &Summary{Distribution: dist}
}
