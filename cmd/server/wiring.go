// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package main

import (
	"fmt"

	"github.com/tomtom215/postwright/internal/analysis"
	"github.com/tomtom215/postwright/internal/config"
	"github.com/tomtom215/postwright/internal/database"
	"github.com/tomtom215/postwright/internal/logging"
	"github.com/tomtom215/postwright/internal/recommend"
)

// engine bundles the store with the components built on top of it.
type engine struct {
	db          *database.DB
	guard       *database.GuardedSource // nil when the breaker is disabled
	synthesizer *recommend.Synthesizer
}

// synthesizerConfig maps the analysis section onto the synthesizer config.
func synthesizerConfig(cfg *config.AnalysisConfig) *recommend.Config {
	return &recommend.Config{
		TopPostsLimit: cfg.TopPostsLimit,
		Topics: analysis.TopicConfig{
			Seed:          cfg.ClusterSeed,
			MaxClusters:   cfg.MaxClusters,
			MaxVocabulary: cfg.MaxVocabulary,
			Restarts:      cfg.KMeansRestarts,
			MaxIterations: cfg.KMeansMaxIterations,
		},
		RecordSnapshots: cfg.RecordSnapshots,
	}
}

// openEngine opens the store and builds the synthesizer over it. The caller
// closes e.db.
func openEngine(cfg *config.Config) (*engine, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logging.Info().Str("db_path", db.Path()).Msg("Database initialized")

	e := &engine{db: db}

	var source recommend.PostSource = db
	if cfg.Breaker.Enabled {
		e.guard = database.NewGuardedSource(db, &cfg.Breaker)
		source = e.guard
	}

	e.synthesizer, err = recommend.NewSynthesizer(source, synthesizerConfig(&cfg.Analysis), logging.WithComponent("recommend"))
	if err != nil {
		closeEngine(e)
		return nil, err
	}
	e.synthesizer.SetMetricRecorder(db)
	return e, nil
}

func closeEngine(e *engine) {
	if err := e.db.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database")
	}
}
