// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package api

import (
	"context"
	"net/http"
	"time"
)

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status            string `json:"status"`
	DatabaseConnected bool   `json:"database_connected"`
	StorageBreaker    string `json:"storage_breaker,omitempty"`
	CollectedPosts    *int   `json:"collected_posts,omitempty"`
	Uptime            string `json:"uptime"`
}

// PostCounter is implemented by stores that can report how many collected
// posts the analysis would see.
type PostCounter interface {
	CountCollectedPosts(ctx context.Context) (int, error)
}

// Health reports "healthy" when storage answers a ping and the storage
// breaker is not open, "degraded" otherwise. It always answers 200 so the
// process is not restarted for a storage outage it can ride out.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := HealthStatus{
		Status:            "healthy",
		DatabaseConnected: h.db != nil && h.db.Ping(ctx) == nil,
		Uptime:            time.Since(h.startTime).Round(time.Second).String(),
	}
	if !status.DatabaseConnected {
		status.Status = "degraded"
	} else if counter, ok := h.db.(PostCounter); ok {
		if n, err := counter.CountCollectedPosts(ctx); err == nil {
			status.CollectedPosts = &n
		}
	}
	if h.breaker != nil {
		status.StorageBreaker = h.breaker.State().String()
		if status.StorageBreaker == "open" {
			status.Status = "degraded"
		}
	}

	respondSuccess(w, status, start)
}
