// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

// Package analysis computes engagement statistics over collected posts.
//
// Every function in this package is pure: it takes a snapshot of posts (or
// the feature rows derived from them) and returns a typed result. Empty input
// yields a zero-valued result with empty, non-nil slices; nothing here
// returns an error.
//
// Components:
//
//   - ExtractFeatures: per-post structural and temporal features
//   - ComputeEngagement: global and per-profile mean/median/max counters
//   - AnalyzeStructure: high-engagement averages and feature correlations
//   - ExtractTopics: keyword, bigram and hashtag frequencies plus TF-IDF
//     k-means topic clusters
//   - AnalyzeTiming: mean engagement by hour of day and day of week
//   - TopPosts: the highest-engagement posts with exemplar flags
package analysis
