// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package legacyimport

import (
	"errors"
	"strings"
	"time"

	"github.com/tomtom215/postwright/internal/models"
)

// errNoPostURL marks rows that cannot be keyed in the post store.
var errNoPostURL = errors.New("row has no post_url")

// timestampLayouts are the forms the legacy collector and scheduler wrote.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimestamp parses a legacy timestamp. Values without a zone are read
// as UTC.
func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// toCollectedPost maps a legacy row. now stamps rows whose collected_at
// cannot be parsed.
func toCollectedPost(rec *LegacyRecord, now time.Time) (models.CollectedPost, error) {
	url := strings.TrimSpace(rec.PostURL.String)
	if !rec.PostURL.Valid || url == "" {
		return models.CollectedPost{}, errNoPostURL
	}

	post := models.CollectedPost{
		ProfileURL:  rec.ProfileURL.String,
		ProfileName: rec.ProfileName.String,
		PostURL:     url,
		Content:     rec.Content.String,
		Likes:       int(rec.Likes.Int64),
		Comments:    int(rec.Comments.Int64),
		Shares:      int(rec.Shares.Int64),
		CollectedAt: now,
	}
	if t, ok := parseTimestamp(rec.PublishDate.String); ok {
		post.PublishDate = t
	}
	if t, ok := parseTimestamp(rec.CollectedAt.String); ok {
		post.CollectedAt = t
	}
	return post, nil
}
