// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

// Package recommend turns engagement analysis into content recommendations.
//
// The Synthesizer is the entry point. Each call reads a fresh snapshot from
// an injected PostSource, runs the analysis package over it, and renders:
//
//   - a RecommendationSet of structure, topic and timing advisories
//   - the top-performing posts, used by the generator as examples
//   - a full Report for dashboards and the CLI
//
// Missing data never fails a call. A storage error yields the same empty
// result as "no data" but is reported through Status and a wrapped
// ErrStorageUnavailable so callers that care can tell the two apart.
//
// # Usage
//
//	synth, err := recommend.NewSynthesizer(store, recommend.DefaultConfig(), logger)
//	set, err := synth.Recommendations(ctx)
//	if errors.Is(err, recommend.ErrStorageUnavailable) {
//	    // set is empty; generate with defaults
//	}
//	prompt := recommend.RenderGuidelines(&set, top)
package recommend
