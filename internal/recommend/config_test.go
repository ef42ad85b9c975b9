// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package recommend

import (
	"strings"
	"testing"
)

func TestDefaultConfig_Validates(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Topics.Seed != 42 {
		t.Errorf("Topics.Seed = %d, want 42", cfg.Topics.Seed)
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.TopPostsLimit = 0
	cfg.Topics.MaxClusters = 0
	cfg.Topics.Restarts = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"top_posts_limit", "max_clusters", "restarts"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}
