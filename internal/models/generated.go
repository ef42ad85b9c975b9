// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package models

import "time"

// GeneratedPost is a post produced by the generator, tracked through
// scheduling, publication and user feedback.
type GeneratedPost struct {
	ID            int64      `json:"id"`
	Content       string     `json:"content"`
	Hashtags      string     `json:"hashtags,omitempty"` // Space separated, as produced by the generator
	GeneratedAt   time.Time  `json:"generated_at"`
	FeedbackScore *int       `json:"feedback_score,omitempty"` // 1..5, nil until rated
	FeedbackText  string     `json:"feedback_text,omitempty"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Published     bool       `json:"published"`
	Profile       string     `json:"profile,omitempty"`
	Topic         string     `json:"topic,omitempty"`
	Tone          string     `json:"tone,omitempty"`
}

// Rated reports whether the post has received a feedback score.
func (g *GeneratedPost) Rated() bool {
	return g.FeedbackScore != nil
}
