// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package models

import "time"

// MetricSnapshot is a single named value recorded into the analytics table.
type MetricSnapshot struct {
	ID         int64     `json:"id"`
	Name       string    `json:"metric_name"`
	Value      float64   `json:"metric_value"`
	RecordedAt time.Time `json:"recorded_at"`
}
