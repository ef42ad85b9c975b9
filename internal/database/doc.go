// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

// Package database is the Post Store: a DuckDB-backed persistence layer for
// collected posts, generated posts and recorded analysis metrics.
//
// The store holds no analysis logic. Three tables are managed:
//
//   - posts: posts observed by the external collector, with engagement
//     counters. Rows are keyed by post_url so re-collection overwrites the
//     counters instead of duplicating the post.
//   - generated_posts: generator output with its lifecycle fields
//     (scheduling, publication, feedback).
//   - analytics: headline metric snapshots written after analysis passes.
//
// Reads used by the analysis engine can be wrapped in a GuardedSource, which
// puts a circuit breaker (github.com/sony/gobreaker/v2) in front of the
// store so a failing database degrades analysis to an empty result quickly
// instead of timing out on every request.
//
// Every query records its duration and outcome through internal/metrics.
package database
