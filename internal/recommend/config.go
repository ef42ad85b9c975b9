// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/postwright/internal/analysis"
)

// Config configures the Synthesizer.
type Config struct {
	// TopPostsLimit is the default number of top performers returned.
	TopPostsLimit int `json:"top_posts_limit"`

	// Topics tunes clustering. Topics.Seed makes cluster assignments
	// reproducible; zero selects the default seed of 42.
	Topics analysis.TopicConfig `json:"topics"`

	// RecordSnapshots writes headline metrics to the analytics table after
	// each successful pass when a MetricRecorder is attached.
	RecordSnapshots bool `json:"record_snapshots"`
}

// DefaultConfig returns the default synthesizer configuration.
func DefaultConfig() *Config {
	return &Config{
		TopPostsLimit:   3,
		Topics:          analysis.DefaultTopicConfig(),
		RecordSnapshots: true,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error
	if c.TopPostsLimit < 1 {
		errs = append(errs, fmt.Errorf("top_posts_limit must be at least 1, got %d", c.TopPostsLimit))
	}
	if c.Topics.MaxClusters < 1 {
		errs = append(errs, fmt.Errorf("max_clusters must be at least 1, got %d", c.Topics.MaxClusters))
	}
	if c.Topics.MaxVocabulary < 2 {
		errs = append(errs, fmt.Errorf("max_vocabulary must be at least 2, got %d", c.Topics.MaxVocabulary))
	}
	if c.Topics.Restarts < 1 {
		errs = append(errs, fmt.Errorf("restarts must be at least 1, got %d", c.Topics.Restarts))
	}
	if c.Topics.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("max_iterations must be at least 1, got %d", c.Topics.MaxIterations))
	}
	return errors.Join(errs...)
}
