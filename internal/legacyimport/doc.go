// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

// Package legacyimport copies collected posts from the SQLite database
// written by the original collector into the DuckDB post store.
//
// The source file is opened read-only with the pure-Go modernc.org/sqlite
// driver, so importing needs neither CGO for SQLite nor a DuckDB extension
// download. Rows are read in id order and batched; each row is mapped to a
// models.CollectedPost and upserted by post_url, which makes re-running an
// import idempotent.
//
// Mapping rules:
//   - NULL post_content becomes "".
//   - NULL counters become 0.
//   - publish_date accepts date-only, ISO-8601 and "YYYY-MM-DD HH:MM:SS"
//     forms; anything else leaves the post untimed.
//   - An unparsable collected_at falls back to the import time.
//   - Rows without a post_url cannot be keyed and are skipped.
package legacyimport
