// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/postwright/internal/models"
)

const generatedPostColumns = `id, content, hashtags, generated_at, feedback_score,
	COALESCE(feedback_text, ''), scheduled_time, published, profile, topic, tone`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneratedPost(s rowScanner) (models.GeneratedPost, error) {
	var g models.GeneratedPost
	var score sql.NullInt64
	var scheduled sql.NullTime
	err := s.Scan(
		&g.ID, &g.Content, &g.Hashtags, &g.GeneratedAt, &score,
		&g.FeedbackText, &scheduled, &g.Published, &g.Profile, &g.Topic, &g.Tone,
	)
	if err != nil {
		return g, err
	}
	if score.Valid {
		v := int(score.Int64)
		g.FeedbackScore = &v
	}
	if scheduled.Valid {
		at := scheduled.Time
		g.ScheduledTime = &at
	}
	return g, nil
}

// InsertGeneratedPost stores generator output and returns its id. A zero
// GeneratedAt is stamped with the current time.
func (db *DB) InsertGeneratedPost(ctx context.Context, post *models.GeneratedPost) (int64, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if post.GeneratedAt.IsZero() {
		post.GeneratedAt = time.Now().UTC()
	}

	start := time.Now()
	var id int64
	err := db.conn.QueryRowContext(ctx, `
		INSERT INTO generated_posts (content, hashtags, generated_at, profile, topic, tone)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		post.Content, post.Hashtags, post.GeneratedAt, post.Profile, post.Topic, post.Tone,
	).Scan(&id)
	observe("insert", "generated_posts", start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to insert generated post: %w", err)
	}

	post.ID = id
	return id, nil
}

// ListGeneratedPosts returns generated posts, newest first.
func (db *DB) ListGeneratedPosts(ctx context.Context) ([]models.GeneratedPost, error) {
	return db.queryGeneratedPosts(ctx, "select",
		`SELECT `+generatedPostColumns+` FROM generated_posts ORDER BY generated_at DESC, id DESC`)
}

// ListRatedPosts returns at most limit posts that carry a feedback score,
// newest first.
func (db *DB) ListRatedPosts(ctx context.Context, limit int) ([]models.GeneratedPost, error) {
	return db.queryGeneratedPosts(ctx, "select_rated",
		`SELECT `+generatedPostColumns+` FROM generated_posts
		WHERE feedback_score IS NOT NULL
		ORDER BY generated_at DESC, id DESC
		LIMIT ?`, limit)
}

func (db *DB) queryGeneratedPosts(ctx context.Context, operation, query string, args ...any) ([]models.GeneratedPost, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		observe(operation, "generated_posts", start, err)
		return nil, fmt.Errorf("failed to query generated posts: %w", err)
	}
	defer closeWithLog(rows, "rows")

	posts := []models.GeneratedPost{}
	for rows.Next() {
		g, err := scanGeneratedPost(rows)
		if err != nil {
			observe(operation, "generated_posts", start, err)
			return nil, fmt.Errorf("failed to scan generated post: %w", err)
		}
		posts = append(posts, g)
	}
	err = rows.Err()
	observe(operation, "generated_posts", start, err)
	if err != nil {
		return nil, fmt.Errorf("error iterating generated posts: %w", err)
	}
	return posts, nil
}

// GetGeneratedPost returns one generated post or ErrNotFound.
func (db *DB) GetGeneratedPost(ctx context.Context, id int64) (*models.GeneratedPost, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+generatedPostColumns+` FROM generated_posts WHERE id = ?`, id)
	g, err := scanGeneratedPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		observe("get", "generated_posts", start, nil)
		return nil, fmt.Errorf("generated post %d: %w", id, ErrNotFound)
	}
	observe("get", "generated_posts", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get generated post %d: %w", id, err)
	}
	return &g, nil
}

// UpdateFeedback stores a feedback score and comment. Score range checks
// belong to the caller.
func (db *DB) UpdateFeedback(ctx context.Context, id int64, score int, text string) error {
	return db.updateGeneratedPost(ctx, "update_feedback", id,
		`UPDATE generated_posts SET feedback_score = ?, feedback_text = ? WHERE id = ?`,
		score, nullString(text), id)
}

// SchedulePost sets the time a generated post should be published.
func (db *DB) SchedulePost(ctx context.Context, id int64, at time.Time) error {
	return db.updateGeneratedPost(ctx, "schedule", id,
		`UPDATE generated_posts SET scheduled_time = ? WHERE id = ?`,
		at, id)
}

// MarkPublished flags a generated post as published.
func (db *DB) MarkPublished(ctx context.Context, id int64) error {
	return db.updateGeneratedPost(ctx, "publish", id,
		`UPDATE generated_posts SET published = true WHERE id = ?`,
		id)
}

func (db *DB) updateGeneratedPost(ctx context.Context, operation string, id int64, query string, args ...any) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	res, err := db.conn.ExecContext(ctx, query, args...)
	observe(operation, "generated_posts", start, err)
	if err != nil {
		return fmt.Errorf("failed to %s generated post %d: %w", operation, id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("generated post %d: %w", id, ErrNotFound)
	}
	return nil
}

// FeedbackScoreCounts returns the number of rated posts per score.
func (db *DB) FeedbackScoreCounts(ctx context.Context) (map[int]int, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT feedback_score, COUNT(*)
		FROM generated_posts
		WHERE feedback_score IS NOT NULL
		GROUP BY feedback_score
		ORDER BY feedback_score`)
	if err != nil {
		observe("feedback_counts", "generated_posts", start, err)
		return nil, fmt.Errorf("failed to query feedback counts: %w", err)
	}
	defer closeWithLog(rows, "rows")

	counts := make(map[int]int)
	for rows.Next() {
		var score, n int
		if err := rows.Scan(&score, &n); err != nil {
			observe("feedback_counts", "generated_posts", start, err)
			return nil, fmt.Errorf("failed to scan feedback count: %w", err)
		}
		counts[score] = n
	}
	err = rows.Err()
	observe("feedback_counts", "generated_posts", start, err)
	if err != nil {
		return nil, fmt.Errorf("error iterating feedback counts: %w", err)
	}
	return counts, nil
}
