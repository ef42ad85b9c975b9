// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tomtom215/postwright/internal/models"
)

var (
	hashtagPattern  = regexp.MustCompile(`#([\p{L}\p{M}\p{N}_]+)`)
	mentionPattern  = regexp.MustCompile(`@[\p{L}\p{M}\p{N}_]+`)
	urlPattern      = regexp.MustCompile(`https?://\S+`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// FeatureRow holds the structural and temporal features of one post.
// It is recomputed on every pass and never persisted.
type FeatureRow struct {
	PostID          int64 `json:"post_id"`
	ContentLength   int   `json:"content_length"` // Characters, not bytes
	WordCount       int   `json:"word_count"`
	HashtagCount    int   `json:"hashtag_count"`
	HasHashtags     bool  `json:"has_hashtags"`
	HasURL          bool  `json:"has_url"`
	HasMention      bool  `json:"has_mention"`
	HasEmoji        bool  `json:"has_emoji"`
	HasQuestion     bool  `json:"has_question"`
	SentenceCount   int   `json:"sentence_count"`
	HourOfDay       int   `json:"hour_of_day"` // 0..23
	DayOfWeek       int   `json:"day_of_week"` // 0=Monday..6=Sunday
	Timed           bool  `json:"timed"`       // False when the publish date is unknown
	TotalEngagement int   `json:"total_engagement"`
}

// ExtractFeatures derives the feature row for a single post.
func ExtractFeatures(p *models.CollectedPost) FeatureRow {
	content := p.Content
	hashtags := len(hashtagPattern.FindAllStringIndex(content, -1))

	row := FeatureRow{
		PostID:          p.ID,
		ContentLength:   utf8.RuneCountInString(content),
		WordCount:       len(strings.Fields(content)),
		HashtagCount:    hashtags,
		HasHashtags:     hashtags > 0,
		HasURL:          urlPattern.MatchString(content),
		HasMention:      mentionPattern.MatchString(content),
		HasEmoji:        containsEmoji(content),
		HasQuestion:     strings.Contains(content, "?"),
		SentenceCount:   len(sentencePattern.Split(content, -1)),
		TotalEngagement: p.TotalEngagement(),
	}

	if !p.PublishDate.IsZero() {
		row.Timed = true
		row.HourOfDay = p.PublishDate.Hour()
		row.DayOfWeek = (int(p.PublishDate.Weekday()) + 6) % 7
	}
	return row
}

// ExtractAll derives one feature row per post, preserving order.
func ExtractAll(posts []models.CollectedPost) []FeatureRow {
	rows := make([]FeatureRow, len(posts))
	for i := range posts {
		rows[i] = ExtractFeatures(&posts[i])
	}
	return rows
}

// hashtagsOf returns the tag bodies (without '#') in order of appearance.
func hashtagsOf(content string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(content, -1)
	tags := make([]string, len(matches))
	for i, m := range matches {
		tags[i] = m[1]
	}
	return tags
}
