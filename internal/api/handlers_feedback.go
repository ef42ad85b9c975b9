// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/postwright/internal/database"
	"github.com/tomtom215/postwright/internal/feedback"
	"github.com/tomtom215/postwright/internal/validation"
)

// SubmitFeedback handles POST /api/v1/generated-posts/{id}/feedback.
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req FeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.feedback.RecordFeedback(r.Context(), id, req.Score, req.Text)
	switch {
	case err == nil:
		respondSuccess(w, map[string]interface{}{"id": id, "score": req.Score}, start)
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Generated post not found", nil)
	case errors.Is(err, feedback.ErrInvalidScore):
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	default:
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to record feedback", err)
	}
}

// FeedbackSummary handles GET /api/v1/feedback/summary.
func (h *Handler) FeedbackSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	summary, err := h.feedback.Summary(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load feedback summary", err)
		return
	}
	respondSuccess(w, summary, start)
}

// FeedbackHistory handles GET /api/v1/feedback/history?limit=N.
func (h *Handler) FeedbackHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := intQueryParam(r, "limit")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if err := validation.Struct(&LimitRequest{Limit: limit}); err != nil {
		respondValidationError(w, err)
		return
	}

	entries, err := h.feedback.History(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load feedback history", err)
		return
	}
	respondSuccess(w, entries, start)
}
