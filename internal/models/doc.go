// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

/*
Package models defines the data structures shared across Postwright.

Stored models:
  - CollectedPost: a post observed by the external collector, with its
    engagement counters. Total engagement is derived, never stored.
  - GeneratedPost: generator output with scheduling, publication and
    feedback fields.
  - MetricSnapshot: one headline metric recorded after an analysis pass.

API models:
  - APIResponse: the envelope every HTTP endpoint returns.
  - APIError: machine-readable error code plus message and details.
  - Metadata: response timestamp and query timing.
*/
package models
