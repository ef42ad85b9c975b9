// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/postwright/internal/analysis"
	"github.com/tomtom215/postwright/internal/feedback"
	"github.com/tomtom215/postwright/internal/logging"
	"github.com/tomtom215/postwright/internal/recommend"
	"github.com/tomtom215/postwright/internal/validation"
)

// analysisTimeout bounds one analysis pass triggered by a request.
const analysisTimeout = 30 * time.Second

// Analyzer is the recommendation engine as seen by the HTTP layer.
type Analyzer interface {
	Analyze(ctx context.Context) (*recommend.Report, error)
	Recommendations(ctx context.Context) (recommend.RecommendationSet, error)
	TopPosts(ctx context.Context, limit int) ([]analysis.TopPost, error)
}

// FeedbackService records and summarises ratings.
type FeedbackService interface {
	RecordFeedback(ctx context.Context, id int64, score int, text string) error
	Summary(ctx context.Context) (*feedback.Summary, error)
	History(ctx context.Context, limit int) ([]feedback.Entry, error)
}

// Pinger reports storage liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerStater exposes the storage circuit breaker state.
type BreakerStater interface {
	State() gobreaker.State
}

// Handler serves the HTTP API.
type Handler struct {
	analyzer  Analyzer
	feedback  FeedbackService
	db        Pinger
	breaker   BreakerStater
	posts     PostStore
	logger    zerolog.Logger
	startTime time.Time
}

// NewHandler creates a handler. db and breaker may be nil.
func NewHandler(analyzer Analyzer, fb FeedbackService, db Pinger, breaker BreakerStater) *Handler {
	return &Handler{
		analyzer:  analyzer,
		feedback:  fb,
		db:        db,
		breaker:   breaker,
		logger:    logging.WithComponent("api"),
		startTime: time.Now(),
	}
}

// TopPostsResponse is the payload of GET /api/v1/top-posts.
type TopPostsResponse struct {
	Posts  []analysis.TopPost `json:"posts"`
	Status recommend.Status   `json:"status"`
}

// GuidelinesResponse is the payload of GET /api/v1/guidelines.
type GuidelinesResponse struct {
	Guidelines string           `json:"guidelines"`
	Status     recommend.Status `json:"status"`
}

// Recommendations handles GET /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()

	set, err := h.analyzer.Recommendations(ctx)
	if err != nil {
		logger := logging.Ctx(r.Context(), h.logger)
		logger.Warn().Err(err).Msg("Serving empty recommendations")
	}
	respondSuccess(w, set, start)
}

// TopPosts handles GET /api/v1/top-posts?limit=N.
func (h *Handler) TopPosts(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()

	resp := TopPostsResponse{Status: recommend.StatusOK}
	resp.Posts, err = h.analyzer.TopPosts(ctx, limit)
	if err != nil {
		logger := logging.Ctx(r.Context(), h.logger)
		logger.Warn().Err(err).Msg("Serving empty top posts")
		resp.Status = recommend.StatusStorageError
	} else if len(resp.Posts) == 0 {
		resp.Status = recommend.StatusNoData
	}
	respondSuccess(w, resp, start)
}

// Analysis handles GET /api/v1/analysis.
func (h *Handler) Analysis(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()

	report, err := h.analyzer.Analyze(ctx)
	if err != nil {
		logger := logging.Ctx(r.Context(), h.logger)
		logger.Warn().Err(err).Msg("Serving empty analysis report")
	}
	respondSuccess(w, report, start)
}

// Guidelines handles GET /api/v1/guidelines.
func (h *Handler) Guidelines(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()

	report, err := h.analyzer.Analyze(ctx)
	if err != nil {
		logger := logging.Ctx(r.Context(), h.logger)
		logger.Warn().Err(err).Msg("Serving empty guidelines")
	}
	respondSuccess(w, GuidelinesResponse{
		Guidelines: recommend.RenderGuidelines(&report.Recommendations, report.TopPosts),
		Status:     report.Status,
	}, start)
}
