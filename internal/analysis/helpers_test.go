// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/postwright/internal/models"
)

// monday9am is a Monday at 09:00 UTC.
var monday9am = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

func makePost(id int64, content string, likes, comments, shares int) models.CollectedPost {
	return models.CollectedPost{
		ID:          id,
		ProfileName: "profile",
		Content:     content,
		PublishDate: monday9am,
		Likes:       likes,
		Comments:    comments,
		Shares:      shares,
		CollectedAt: monday9am.Add(24 * time.Hour),
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func checkFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func checkInt(t *testing.T, name string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %d, want %d", name, got, want)
	}
}

func checkBool(t *testing.T, name string, got, want bool) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
