// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/postwright/internal/models"
)

// RecordMetric appends one metric snapshot to the analytics table.
func (db *DB) RecordMetric(ctx context.Context, name string, value float64, at time.Time) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if at.IsZero() {
		at = time.Now().UTC()
	}

	start := time.Now()
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO analytics (metric_name, metric_value, recorded_at) VALUES (?, ?, ?)`,
		name, value, at)
	observe("insert", "analytics", start, err)
	if err != nil {
		return fmt.Errorf("failed to record metric %s: %w", name, err)
	}
	return nil
}

// ListMetrics returns the most recent snapshots, newest first. An empty name
// lists every metric; a non-positive limit means no limit.
func (db *DB) ListMetrics(ctx context.Context, name string, limit int) ([]models.MetricSnapshot, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	query := `SELECT id, metric_name, metric_value, recorded_at FROM analytics`
	var args []any
	if name != "" {
		query += ` WHERE metric_name = ?`
		args = append(args, name)
	}
	query += ` ORDER BY recorded_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		observe("select", "analytics", start, err)
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}
	defer closeWithLog(rows, "rows")

	snapshots := []models.MetricSnapshot{}
	for rows.Next() {
		var m models.MetricSnapshot
		if err := rows.Scan(&m.ID, &m.Name, &m.Value, &m.RecordedAt); err != nil {
			observe("select", "analytics", start, err)
			return nil, fmt.Errorf("failed to scan metric: %w", err)
		}
		snapshots = append(snapshots, m)
	}
	err = rows.Err()
	observe("select", "analytics", start, err)
	if err != nil {
		return nil, fmt.Errorf("error iterating metrics: %w", err)
	}
	return snapshots, nil
}
