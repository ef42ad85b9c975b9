// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tomtom215/postwright/internal/models"
)

// newMockDB returns a DB backed by sqlmock. Expectations are verified when
// the test completes.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = conn.Close()
	})
	return NewFromConn(conn), mock
}

var (
	collectedAt = time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	publishedAt = time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
)

func TestUpsertCollectedPost(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	post := &models.CollectedPost{
		ProfileURL:  "https://example.com/in/ada",
		ProfileName: "ada",
		PostURL:     "https://example.com/posts/1",
		Content:     "Shipping day #release",
		PublishDate: publishedAt,
		Likes:       10, Comments: 2, Shares: 1,
		CollectedAt: collectedAt,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts")).
		WithArgs(post.ProfileURL, post.ProfileName, post.PostURL,
			sqlmock.AnyArg(), sqlmock.AnyArg(), 10, 2, 1, collectedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := db.UpsertCollectedPost(context.Background(), post)
	if err != nil {
		t.Fatalf("UpsertCollectedPost() error = %v", err)
	}
	if id != 7 || post.ID != 7 {
		t.Errorf("id = %d, post.ID = %d, want 7", id, post.ID)
	}
}

func TestUpsertCollectedPost_StampsCollectedAt(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	post := &models.CollectedPost{PostURL: "https://example.com/posts/2"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	if _, err := db.UpsertCollectedPost(context.Background(), post); err != nil {
		t.Fatalf("UpsertCollectedPost() error = %v", err)
	}
	if post.CollectedAt.IsZero() {
		t.Error("CollectedAt was not stamped")
	}
}

func TestUpsertCollectedPost_RequiresPostURL(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	_, err := db.UpsertCollectedPost(context.Background(), &models.CollectedPost{Content: "x"})
	if !errors.Is(err, ErrMissingPostURL) {
		t.Errorf("error = %v, want ErrMissingPostURL", err)
	}
}

func TestListCollectedPosts(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	columns := []string{"id", "profile_url", "profile_name", "post_url", "post_content",
		"publish_date", "likes", "comments", "shares", "collected_at"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "u", "ada", "p1", "Hello world", publishedAt, 10, 2, 1, collectedAt).
			AddRow(int64(2), "u", "bob", "p2", "", nil, 0, 0, 0, collectedAt))

	posts, err := db.ListCollectedPosts(context.Background())
	if err != nil {
		t.Fatalf("ListCollectedPosts() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].TotalEngagement() != 13 || !posts[0].PublishDate.Equal(publishedAt) {
		t.Errorf("unexpected first post: %+v", posts[0])
	}
	if posts[1].Content != "" || !posts[1].PublishDate.IsZero() {
		t.Errorf("NULL columns not mapped to zero values: %+v", posts[1])
	}
}

func TestListCollectedPosts_Empty(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	posts, err := db.ListCollectedPosts(context.Background())
	if err != nil {
		t.Fatalf("ListCollectedPosts() error = %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Errorf("posts = %v, want empty non-nil slice", posts)
	}
}

func TestListCollectedPosts_QueryError(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	boom := errors.New("disk on fire")
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts")).WillReturnError(boom)

	if _, err := db.ListCollectedPosts(context.Background()); !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
}

func generatedColumns() []string {
	return []string{"id", "content", "hashtags", "generated_at", "feedback_score",
		"feedback_text", "scheduled_time", "published", "profile", "topic", "tone"}
}

func TestGetGeneratedPost(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM generated_posts WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(generatedColumns()).
			AddRow(int64(3), "Draft", "#go", collectedAt, int64(4), "nice", publishedAt, true, "ada", "go", "casual"))

	got, err := db.GetGeneratedPost(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetGeneratedPost() error = %v", err)
	}
	if !got.Rated() || *got.FeedbackScore != 4 || got.FeedbackText != "nice" {
		t.Errorf("feedback not mapped: %+v", got)
	}
	if got.ScheduledTime == nil || !got.ScheduledTime.Equal(publishedAt) || !got.Published {
		t.Errorf("lifecycle fields not mapped: %+v", got)
	}
}

func TestGetGeneratedPost_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM generated_posts WHERE id = ?")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(generatedColumns()))

	if _, err := db.GetGeneratedPost(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListRatedPosts(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE feedback_score IS NOT NULL")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(generatedColumns()).
			AddRow(int64(2), "B", "", collectedAt, int64(5), "", nil, false, "", "", "").
			AddRow(int64(1), "A", "", collectedAt, int64(2), "meh", nil, false, "", "", ""))

	posts, err := db.ListRatedPosts(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListRatedPosts() error = %v", err)
	}
	if len(posts) != 2 || posts[0].ID != 2 || posts[1].ScheduledTime != nil {
		t.Errorf("unexpected rated posts: %+v", posts)
	}
}

func TestInsertGeneratedPost(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	post := &models.GeneratedPost{Content: "New post", Hashtags: "#go", Profile: "ada", Topic: "go", Tone: "casual"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO generated_posts")).
		WithArgs("New post", "#go", sqlmock.AnyArg(), "ada", "go", "casual").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	id, err := db.InsertGeneratedPost(context.Background(), post)
	if err != nil {
		t.Fatalf("InsertGeneratedPost() error = %v", err)
	}
	if id != 11 || post.GeneratedAt.IsZero() {
		t.Errorf("id = %d, GeneratedAt = %v", id, post.GeneratedAt)
	}
}

func TestGeneratedPostUpdates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		affected int64
		call     func(db *DB) error
		wantErr  error
	}{
		{
			name:     "feedback stored",
			pattern:  "SET feedback_score = ?, feedback_text = ?",
			affected: 1,
			call:     func(db *DB) error { return db.UpdateFeedback(context.Background(), 1, 5, "great") },
		},
		{
			name:     "feedback on missing post",
			pattern:  "SET feedback_score = ?, feedback_text = ?",
			affected: 0,
			call:     func(db *DB) error { return db.UpdateFeedback(context.Background(), 42, 3, "") },
			wantErr:  ErrNotFound,
		},
		{
			name:     "schedule",
			pattern:  "SET scheduled_time = ?",
			affected: 1,
			call:     func(db *DB) error { return db.SchedulePost(context.Background(), 1, publishedAt) },
		},
		{
			name:     "publish missing post",
			pattern:  "SET published = true",
			affected: 0,
			call:     func(db *DB) error { return db.MarkPublished(context.Background(), 8) },
			wantErr:  ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock := newMockDB(t)
			mock.ExpectExec(regexp.QuoteMeta(tt.pattern)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := tt.call(db)
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFeedbackScoreCounts(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY feedback_score")).
		WillReturnRows(sqlmock.NewRows([]string{"feedback_score", "count"}).
			AddRow(int64(1), int64(2)).
			AddRow(int64(5), int64(3)))

	counts, err := db.FeedbackScoreCounts(context.Background())
	if err != nil {
		t.Fatalf("FeedbackScoreCounts() error = %v", err)
	}
	if counts[1] != 2 || counts[5] != 3 || len(counts) != 2 {
		t.Errorf("counts = %v", counts)
	}
}

func TestRecordMetric(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analytics")).
		WithArgs("post_count", 12.0, collectedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := db.RecordMetric(context.Background(), "post_count", 12, collectedAt); err != nil {
		t.Fatalf("RecordMetric() error = %v", err)
	}
}

func TestListMetrics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		metric  string
		limit   int
		pattern string
		args    []driver.Value
	}{
		{"all metrics unbounded", "", 0, "FROM analytics ORDER BY recorded_at DESC, id DESC", nil},
		{"one metric limited", "post_count", 5, "WHERE metric_name = ? ORDER BY recorded_at DESC, id DESC LIMIT ?", []driver.Value{"post_count", 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock := newMockDB(t)
			rows := sqlmock.NewRows([]string{"id", "metric_name", "metric_value", "recorded_at"}).
				AddRow(int64(1), "post_count", 12.0, collectedAt)

			expect := mock.ExpectQuery(regexp.QuoteMeta(tt.pattern))
			if len(tt.args) > 0 {
				expect = expect.WithArgs(tt.args...)
			}
			expect.WillReturnRows(rows)

			got, err := db.ListMetrics(context.Background(), tt.metric, tt.limit)
			if err != nil {
				t.Fatalf("ListMetrics() error = %v", err)
			}
			if len(got) != 1 || got[0].Name != "post_count" || got[0].Value != 12 {
				t.Errorf("unexpected snapshots: %+v", got)
			}
		})
	}
}

func TestClose_Checkpoints(t *testing.T) {
	t.Parallel()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	mock.ExpectExec("CHECKPOINT").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectClose()

	if err := NewFromConn(conn).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
