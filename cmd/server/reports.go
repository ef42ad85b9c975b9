// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tomtom215/postwright/internal/analysis"
	"github.com/tomtom215/postwright/internal/recommend"
)

// reportSource is the part of the synthesizer the report commands use.
type reportSource interface {
	Analyze(ctx context.Context) (*recommend.Report, error)
	Recommendations(ctx context.Context) (recommend.RecommendationSet, error)
	TopPosts(ctx context.Context, limit int) ([]analysis.TopPost, error)
}

// withEngine opens the store for the duration of fn.
func (a *app) withEngine(cmd *cobra.Command, fn func(ctx context.Context, src reportSource) error) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	e, err := openEngine(a.cfg)
	if err != nil {
		return err
	}
	defer closeEngine(e)
	return fn(ctx, e.synthesizer)
}

func newRecommendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Print the current recommendation set as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEngine(cmd, func(ctx context.Context, src reportSource) error {
				return runRecommend(ctx, cmd.OutOrStdout(), src)
			})
		},
	}
}

func newTopPostsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top-posts",
		Short: "Print the highest-engagement posts as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}
			return a.withEngine(cmd, func(ctx context.Context, src reportSource) error {
				return runTopPosts(ctx, cmd.OutOrStdout(), src, limit)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of posts (0 = analysis.top_posts_limit)")
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Print the full analysis report as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEngine(cmd, func(ctx context.Context, src reportSource) error {
				return runAnalyze(ctx, cmd.OutOrStdout(), src)
			})
		},
	}
}

func newGuidelinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "guidelines",
		Short: "Print the generation guidelines text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEngine(cmd, func(ctx context.Context, src reportSource) error {
				return runGuidelines(ctx, cmd.OutOrStdout(), src)
			})
		},
	}
}

// The run functions print whatever the engine returned, including the
// empty storage_error result, and then return the engine error so the
// process exits non-zero.

func runRecommend(ctx context.Context, w io.Writer, src reportSource) error {
	set, err := src.Recommendations(ctx)
	if werr := writeJSON(w, set); werr != nil {
		return werr
	}
	return err
}

func runTopPosts(ctx context.Context, w io.Writer, src reportSource, limit int) error {
	posts, err := src.TopPosts(ctx, limit)
	if werr := writeJSON(w, posts); werr != nil {
		return werr
	}
	return err
}

func runAnalyze(ctx context.Context, w io.Writer, src reportSource) error {
	report, err := src.Analyze(ctx)
	if werr := writeJSON(w, report); werr != nil {
		return werr
	}
	return err
}

// runGuidelines prints the rendered guidelines. A storage failure still
// prints the empty-guidelines line before the error is returned.
func runGuidelines(ctx context.Context, w io.Writer, src reportSource) error {
	report, err := src.Analyze(ctx)
	text := recommend.RenderGuidelines(&report.Recommendations, report.TopPosts)

	var werr error
	switch {
	case text != "":
		_, werr = io.WriteString(w, text)
	case err != nil:
		_, werr = fmt.Fprintln(w, "No guidelines available: post storage is unavailable.")
	default:
		_, werr = fmt.Fprintln(w, "No guidelines available: no collected posts yet.")
	}
	if werr != nil {
		return werr
	}
	return err
}
