// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package legacyimport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

// LegacyRecord is one raw row of the legacy posts table.
type LegacyRecord struct {
	ID          int64
	ProfileURL  sql.NullString
	ProfileName sql.NullString
	PostURL     sql.NullString
	Content     sql.NullString
	PublishDate sql.NullString
	Likes       sql.NullInt64
	Comments    sql.NullInt64
	Shares      sql.NullInt64
	CollectedAt sql.NullString
}

// SQLiteReader reads the legacy posts table.
type SQLiteReader struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteReader opens dbPath read-only and verifies the posts table exists.
func NewSQLiteReader(dbPath string) (*SQLiteReader, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("legacy database: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := verifyTables(db); err != nil {
		db.Close() //nolint:errcheck // best-effort cleanup on error path
		return nil, fmt.Errorf("verify tables: %w", err)
	}

	return &SQLiteReader{db: db, dbPath: dbPath}, nil
}

// verifyTables checks that the legacy posts table exists.
func verifyTables(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		"posts",
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("check table posts: %w", err)
	}
	if count == 0 {
		return errors.New("table posts not found in legacy database")
	}
	return nil
}

// CountRecords returns the number of rows in the legacy posts table.
func (r *SQLiteReader) CountRecords(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// ReadBatch returns up to limit records with id greater than afterID,
// ordered by id.
func (r *SQLiteReader) ReadBatch(ctx context.Context, afterID int64, limit int) ([]LegacyRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, profile_url, profile_name, post_url, post_content,
			publish_date, likes, comments, shares, collected_at
		FROM posts
		WHERE id > ?
		ORDER BY id
		LIMIT ?`, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var records []LegacyRecord
	for rows.Next() {
		var rec LegacyRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProfileURL, &rec.ProfileName, &rec.PostURL, &rec.Content,
			&rec.PublishDate, &rec.Likes, &rec.Comments, &rec.Shares, &rec.CollectedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return records, nil
}

// Close closes the reader.
func (r *SQLiteReader) Close() error {
	return r.db.Close()
}
