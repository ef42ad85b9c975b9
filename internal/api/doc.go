// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

// Package api exposes the recommendation engine and the feedback component
// over HTTP using the Chi router.
//
// Routes:
//
//	GET  /health                                    liveness and storage status
//	GET  /metrics                                   Prometheus metrics
//	GET  /api/v1/recommendations                    advisory set
//	GET  /api/v1/top-posts?limit=N                  ranked top performers
//	GET  /api/v1/analysis                           full analysis report
//	GET  /api/v1/guidelines                         rendered generation guidelines
//	GET  /api/v1/feedback/summary                   feedback totals and distribution
//	GET  /api/v1/feedback/history?limit=N           recent rated posts
//	POST /api/v1/generated-posts                    store generator output
//	GET  /api/v1/generated-posts                    list generated posts
//	GET  /api/v1/generated-posts/{id}               one generated post
//	POST /api/v1/generated-posts/{id}/schedule      set the publish time
//	POST /api/v1/generated-posts/{id}/publish       mark as published
//	POST /api/v1/generated-posts/{id}/feedback      record a rating
//	GET  /api/v1/analytics/metrics?name=&limit=N    recorded analysis snapshots
//
// Every response uses the models.APIResponse envelope. Analysis endpoints
// never answer 5xx for storage failures: they return the empty result with
// status "storage_error" so the generator can fall back to its defaults.
package api
