// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/postwright/internal/database"
	"github.com/tomtom215/postwright/internal/feedback"
	"github.com/tomtom215/postwright/internal/logging"
)

func newFeedbackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Rate generated posts and inspect ratings",
	}
	cmd.AddCommand(newFeedbackRateCmd(a))
	cmd.AddCommand(newFeedbackSummaryCmd(a))
	cmd.AddCommand(newFeedbackHistoryCmd(a))
	return cmd
}

// withStore opens the store for the duration of fn.
func (a *app) withStore(cmd *cobra.Command, fn func(ctx context.Context, db *database.DB) error) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	db, err := database.New(&a.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	return fn(ctx, db)
}

// withFeedback opens the store and hands a feedback service to fn.
func (a *app) withFeedback(cmd *cobra.Command, fn func(ctx context.Context, svc *feedback.Service) error) error {
	return a.withStore(cmd, func(ctx context.Context, db *database.DB) error {
		return fn(ctx, feedback.NewService(db, logging.WithComponent("feedback")))
	})
}

// parseRating validates the id and score arguments of "feedback rate".
func parseRating(idArg, scoreArg string) (int64, int, error) {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil || id <= 0 {
		return 0, 0, fmt.Errorf("invalid generated post id %q", idArg)
	}
	score, err := strconv.Atoi(scoreArg)
	if err != nil || score < feedback.MinScore || score > feedback.MaxScore {
		return 0, 0, fmt.Errorf("%w: got %q", feedback.ErrInvalidScore, scoreArg)
	}
	return id, score, nil
}

func newFeedbackRateCmd(a *app) *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "rate <id> <score>",
		Short: "Rate a generated post from 1 to 5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, score, err := parseRating(args[0], args[1])
			if err != nil {
				return err
			}
			return a.withFeedback(cmd, func(ctx context.Context, svc *feedback.Service) error {
				if err := svc.RecordFeedback(ctx, id, score, text); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Recorded score %d for post %d\n", score, id)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "free-form comment")
	return cmd
}

func newFeedbackSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the feedback summary as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withFeedback(cmd, func(ctx context.Context, svc *feedback.Service) error {
				summary, err := svc.Summary(ctx)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), summary)
			})
		},
	}
}

func newFeedbackHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recently rated posts as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withFeedback(cmd, func(ctx context.Context, svc *feedback.Service) error {
				entries, err := svc.History(ctx, limit)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), entries)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", feedback.DefaultHistoryLimit, "number of entries")
	return cmd
}
