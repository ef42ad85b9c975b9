// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every route onto a Chi router.
func NewRouter(h *Handler, mw *ChiMiddleware) http.Handler {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}

	r := chi.NewRouter()

	// Global middleware, applied in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.CORS()) // must be global to answer OPTIONS preflight

	r.With(mw.RateLimitHealth(), APISecurityHeaders()).Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(PrometheusMetrics)
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/recommendations", h.Recommendations)
		r.Get("/top-posts", h.TopPosts)
		r.Get("/analysis", h.Analysis)
		r.Get("/guidelines", h.Guidelines)

		r.Route("/feedback", func(r chi.Router) {
			r.Get("/summary", h.FeedbackSummary)
			r.Get("/history", h.FeedbackHistory)
		})
		r.Route("/generated-posts", func(r chi.Router) {
			r.Post("/", h.CreateGeneratedPost)
			r.Get("/", h.ListGeneratedPosts)
			r.Get("/{id}", h.GetGeneratedPost)
			r.Post("/{id}/schedule", h.ScheduleGeneratedPost)
			r.Post("/{id}/publish", h.PublishGeneratedPost)
			r.Post("/{id}/feedback", h.SubmitFeedback)
		})
		r.Get("/analytics/metrics", h.AnalyticsMetrics)
	})

	return r
}
