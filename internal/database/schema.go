// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range indexCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}

// tableCreationQueries returns the schema. Column names follow the tables
// written by the original collector so legacy rows map one to one.
func tableCreationQueries() []string {
	return []string{
		`CREATE SEQUENCE IF NOT EXISTS posts_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS posts (
			id BIGINT PRIMARY KEY DEFAULT nextval('posts_id_seq'),
			profile_url TEXT NOT NULL DEFAULT '',
			profile_name TEXT NOT NULL DEFAULT '',
			post_url TEXT NOT NULL UNIQUE,
			post_content TEXT,
			publish_date TIMESTAMP,
			likes INTEGER NOT NULL DEFAULT 0,
			comments INTEGER NOT NULL DEFAULT 0,
			shares INTEGER NOT NULL DEFAULT 0,
			collected_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE SEQUENCE IF NOT EXISTS generated_posts_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS generated_posts (
			id BIGINT PRIMARY KEY DEFAULT nextval('generated_posts_id_seq'),
			content TEXT NOT NULL,
			hashtags TEXT NOT NULL DEFAULT '',
			generated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			feedback_score INTEGER,
			feedback_text TEXT,
			scheduled_time TIMESTAMP,
			published BOOLEAN NOT NULL DEFAULT false,
			profile TEXT NOT NULL DEFAULT '',
			topic TEXT NOT NULL DEFAULT '',
			tone TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE SEQUENCE IF NOT EXISTS analytics_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS analytics (
			id BIGINT PRIMARY KEY DEFAULT nextval('analytics_id_seq'),
			metric_name TEXT NOT NULL,
			metric_value DOUBLE NOT NULL,
			recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
}

func indexCreationQueries() []string {
	return []string{
		`CREATE INDEX IF NOT EXISTS idx_posts_profile_name ON posts(profile_name)`,
		`CREATE INDEX IF NOT EXISTS idx_analytics_metric_recorded ON analytics(metric_name, recorded_at)`,
	}
}
