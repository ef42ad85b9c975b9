// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/postwright/internal/database"
	"github.com/tomtom215/postwright/internal/models"
	"github.com/tomtom215/postwright/internal/validation"
)

// PostStore holds generator output and the recorded analysis snapshots.
type PostStore interface {
	InsertGeneratedPost(ctx context.Context, post *models.GeneratedPost) (int64, error)
	ListGeneratedPosts(ctx context.Context) ([]models.GeneratedPost, error)
	GetGeneratedPost(ctx context.Context, id int64) (*models.GeneratedPost, error)
	SchedulePost(ctx context.Context, id int64, at time.Time) error
	MarkPublished(ctx context.Context, id int64) error
	ListMetrics(ctx context.Context, name string, limit int) ([]models.MetricSnapshot, error)
}

// defaultMetricsLimit applies when GET /api/v1/analytics/metrics has no limit.
const defaultMetricsLimit = 100

// WithPostStore enables the generated-post and analytics routes. Without a
// store they answer 503.
func (h *Handler) WithPostStore(store PostStore) *Handler {
	h.posts = store
	return h
}

func (h *Handler) requirePostStore(w http.ResponseWriter) bool {
	if h.posts == nil {
		respondError(w, http.StatusServiceUnavailable, "STORAGE_ERROR", "Post storage is not configured", nil)
		return false
	}
	return true
}

// CreateGeneratedPost handles POST /api/v1/generated-posts.
func (h *Handler) CreateGeneratedPost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requirePostStore(w) {
		return
	}

	var req GeneratedPostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post := &models.GeneratedPost{
		Content:  req.Content,
		Hashtags: req.Hashtags,
		Profile:  req.Profile,
		Topic:    req.Topic,
		Tone:     req.Tone,
	}
	if _, err := h.posts.InsertGeneratedPost(r.Context(), post); err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to store generated post", err)
		return
	}
	respondCreated(w, post, start)
}

// ListGeneratedPosts handles GET /api/v1/generated-posts.
func (h *Handler) ListGeneratedPosts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requirePostStore(w) {
		return
	}

	posts, err := h.posts.ListGeneratedPosts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to list generated posts", err)
		return
	}
	respondSuccess(w, posts, start)
}

// GetGeneratedPost handles GET /api/v1/generated-posts/{id}.
func (h *Handler) GetGeneratedPost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requirePostStore(w) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.posts.GetGeneratedPost(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Failed to load generated post")
		return
	}
	respondSuccess(w, post, start)
}

// ScheduleGeneratedPost handles POST /api/v1/generated-posts/{id}/schedule.
func (h *Handler) ScheduleGeneratedPost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requirePostStore(w) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req ScheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ScheduledTime.IsZero() {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "scheduled_time is required", nil)
		return
	}

	at := req.ScheduledTime.UTC()
	if err := h.posts.SchedulePost(r.Context(), id, at); err != nil {
		respondStoreError(w, err, "Failed to schedule generated post")
		return
	}
	respondSuccess(w, map[string]interface{}{"id": id, "scheduled_time": at}, start)
}

// PublishGeneratedPost handles POST /api/v1/generated-posts/{id}/publish.
func (h *Handler) PublishGeneratedPost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requirePostStore(w) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.posts.MarkPublished(r.Context(), id); err != nil {
		respondStoreError(w, err, "Failed to mark generated post published")
		return
	}
	respondSuccess(w, map[string]interface{}{"id": id, "published": true}, start)
}

// AnalyticsMetrics handles GET /api/v1/analytics/metrics?name=&limit=.
func (h *Handler) AnalyticsMetrics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requirePostStore(w) {
		return
	}

	limit, err := intQueryParam(r, "limit")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	req := MetricsRequest{Name: r.URL.Query().Get("name"), Limit: limit}
	if err := validation.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}
	if req.Limit == 0 {
		req.Limit = defaultMetricsLimit
	}

	snapshots, err := h.posts.ListMetrics(r.Context(), req.Name, req.Limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to list metrics", err)
		return
	}
	respondSuccess(w, snapshots, start)
}

// respondStoreError maps database.ErrNotFound to 404 and anything else to 500.
func respondStoreError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Generated post not found", nil)
		return
	}
	respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", message, err)
}
