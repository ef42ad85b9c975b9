// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

// Package services adapts Postwright components to suture.Service.
//
// Every wrapper returns ctx.Err() on cancellation and a wrapped error on
// failure so the owning supervisor can restart it.
package services
