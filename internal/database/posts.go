// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/postwright/internal/models"
)

const upsertCollectedPostQuery = `
	INSERT INTO posts (profile_url, profile_name, post_url, post_content, publish_date,
		likes, comments, shares, collected_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (post_url) DO UPDATE SET
		post_content = EXCLUDED.post_content,
		publish_date = EXCLUDED.publish_date,
		likes = EXCLUDED.likes,
		comments = EXCLUDED.comments,
		shares = EXCLUDED.shares,
		collected_at = EXCLUDED.collected_at
	RETURNING id`

const listCollectedPostsQuery = `
	SELECT id, profile_url, profile_name, post_url, COALESCE(post_content, ''),
		publish_date, likes, comments, shares, collected_at
	FROM posts
	ORDER BY id`

// UpsertCollectedPost stores a collected post, overwriting content and
// counters when the same post_url was collected before. It returns the row id.
// A zero CollectedAt is stamped with the current time.
func (db *DB) UpsertCollectedPost(ctx context.Context, post *models.CollectedPost) (int64, error) {
	if post.PostURL == "" {
		return 0, ErrMissingPostURL
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	collectedAt := post.CollectedAt
	if collectedAt.IsZero() {
		collectedAt = time.Now().UTC()
	}

	start := time.Now()
	var id int64
	err := db.conn.QueryRowContext(ctx, upsertCollectedPostQuery,
		post.ProfileURL,
		post.ProfileName,
		post.PostURL,
		nullString(post.Content),
		nullTime(post.PublishDate),
		post.Likes,
		post.Comments,
		post.Shares,
		collectedAt,
	).Scan(&id)
	observe("upsert", "posts", start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert post %s: %w", post.PostURL, err)
	}

	post.ID = id
	post.CollectedAt = collectedAt
	return id, nil
}

// ListCollectedPosts returns every collected post ordered by id. A NULL
// post_content is returned as "" and a NULL publish_date as the zero time.
func (db *DB) ListCollectedPosts(ctx context.Context) ([]models.CollectedPost, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, listCollectedPostsQuery)
	if err != nil {
		observe("select", "posts", start, err)
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer closeWithLog(rows, "rows")

	posts := []models.CollectedPost{}
	for rows.Next() {
		var p models.CollectedPost
		var publishDate sql.NullTime
		if err := rows.Scan(
			&p.ID, &p.ProfileURL, &p.ProfileName, &p.PostURL, &p.Content,
			&publishDate, &p.Likes, &p.Comments, &p.Shares, &p.CollectedAt,
		); err != nil {
			observe("select", "posts", start, err)
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		if publishDate.Valid {
			p.PublishDate = publishDate.Time
		}
		posts = append(posts, p)
	}
	err = rows.Err()
	observe("select", "posts", start, err)
	if err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// CountCollectedPosts returns the number of rows in the posts table.
func (db *DB) CountCollectedPosts(ctx context.Context) (int, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var n int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n)
	observe("count", "posts", start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return n, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
