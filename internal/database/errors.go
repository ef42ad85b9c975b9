// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/postwright/internal/logging"
)

// ErrNotFound is returned when a generated post does not exist.
var ErrNotFound = errors.New("not found")

// ErrMissingPostURL is returned when a collected post has no post_url, the
// key used to recognise re-collection of the same post.
var ErrMissingPostURL = errors.New("collected post has no post_url")

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource in an error path where Close errors are not
// actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
