// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package api

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/postwright/internal/validation"
)

// maxRequestBody caps the body of every write request.
const maxRequestBody = 64 << 10

// LimitRequest carries an optional ?limit= parameter; 0 selects the default.
type LimitRequest struct {
	Limit int `json:"limit" validate:"gte=0,lte=100"`
}

// FeedbackRequest is the body of POST /api/v1/generated-posts/{id}/feedback.
type FeedbackRequest struct {
	Score int    `json:"score" validate:"required,gte=1,lte=5"`
	Text  string `json:"text" validate:"max=2000"`
}

// GeneratedPostRequest is the body of POST /api/v1/generated-posts, sent by
// the generator after producing a post.
type GeneratedPostRequest struct {
	Content  string `json:"content" validate:"required,max=10000"`
	Hashtags string `json:"hashtags" validate:"max=1000"`
	Profile  string `json:"profile" validate:"max=200"`
	Topic    string `json:"topic" validate:"max=200"`
	Tone     string `json:"tone" validate:"max=100"`
}

// ScheduleRequest is the body of POST /api/v1/generated-posts/{id}/schedule.
type ScheduleRequest struct {
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`
}

// MetricsRequest carries the ?name= and ?limit= parameters of
// GET /api/v1/analytics/metrics.
type MetricsRequest struct {
	Name  string `validate:"max=100"`
	Limit int    `validate:"gte=0,lte=1000"`
}

// pathID parses the {id} URL parameter, answering 400 when it is not a
// positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid generated post id", nil)
		return 0, false
	}
	return id, true
}

// decodeBody reads a JSON body into dst and validates it, answering 400 on
// any failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unable to read request body", err)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be JSON", nil)
		return false
	}
	if err := validation.Struct(dst); err != nil {
		respondValidationError(w, err)
		return false
	}
	return true
}
