// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package models

import "time"

// CollectedPost is a previously published post observed on a profile,
// together with the engagement counters captured at collection time.
// Rows are written by the external collector and are read-only to analysis.
type CollectedPost struct {
	ID          int64     `json:"id"`
	ProfileURL  string    `json:"profile_url,omitempty"`
	ProfileName string    `json:"profile_name"`
	PostURL     string    `json:"post_url,omitempty"`
	Content     string    `json:"content"`                // Empty when the collector stored NULL
	PublishDate time.Time `json:"publish_date,omitempty"` // Zero when unknown
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	CollectedAt time.Time `json:"collected_at"`
}

// TotalEngagement returns likes + comments + shares.
// It is always derived and never stored.
func (p *CollectedPost) TotalEngagement() int {
	return p.Likes + p.Comments + p.Shares
}
