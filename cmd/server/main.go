// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

// Package main is the Postwright command line entry point.
//
// Postwright analyses collected social posts and turns the results into
// writing recommendations for a post generator. One binary covers every
// role:
//
//	postwright serve                   run the HTTP API under supervision
//	postwright recommend               print the current recommendation set
//	postwright top-posts --limit 5     print the best performing posts
//	postwright analyze                 print the full analysis report
//	postwright guidelines              print the rendered generation guidelines
//	postwright import --path old.db    copy posts from the legacy SQLite store
//	postwright feedback rate 12 4      rate a generated post
//	postwright feedback summary        print aggregate feedback
//	postwright generated add --content "..."   store a generated post
//	postwright generated schedule 12 "2026-03-02 09:00"
//	postwright generated publish 12    mark a generated post published
//	postwright metrics --name post_count   print recorded analysis snapshots
//
// # Configuration
//
// Settings are layered with Koanf v2, highest priority last:
//   - Built-in defaults
//   - Config file (--config, CONFIG_PATH, or ./config.yaml)
//   - Environment variables (DUCKDB_PATH, HTTP_PORT, LOG_LEVEL, ...)
//
// # Signal Handling
//
// Every subcommand runs under a context canceled by SIGINT or SIGTERM. The
// server drains in-flight requests before closing the database.
package main

import (
	"os"

	"github.com/tomtom215/postwright/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
