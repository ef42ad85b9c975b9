// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/postwright/internal/database"
	"github.com/tomtom215/postwright/internal/models"
)

// scheduleLayouts are the accepted forms of a "generated schedule" time.
// Layouts without a zone are read as UTC.
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

func newGeneratedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generated",
		Short: "Store and manage generated posts",
	}
	cmd.AddCommand(newGeneratedAddCmd(a))
	cmd.AddCommand(newGeneratedListCmd(a))
	cmd.AddCommand(newGeneratedShowCmd(a))
	cmd.AddCommand(newGeneratedScheduleCmd(a))
	cmd.AddCommand(newGeneratedPublishCmd(a))
	return cmd
}

// parsePostID validates a generated post id argument.
func parsePostID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid generated post id %q", arg)
	}
	return id, nil
}

// parseScheduleTime reads a publish time in any of scheduleLayouts.
func parseScheduleTime(arg string) (time.Time, error) {
	arg = strings.TrimSpace(arg)
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, arg); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid schedule time %q: want RFC 3339 or YYYY-MM-DD HH:MM", arg)
}

func newGeneratedAddCmd(a *app) *cobra.Command {
	var post models.GeneratedPost
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a generated post and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(post.Content) == "" {
				return errors.New("--content is required")
			}
			return a.withStore(cmd, func(ctx context.Context, db *database.DB) error {
				if _, err := db.InsertGeneratedPost(ctx, &post); err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), post)
			})
		},
	}
	cmd.Flags().StringVar(&post.Content, "content", "", "post text")
	cmd.Flags().StringVar(&post.Hashtags, "hashtags", "", "space separated hashtags")
	cmd.Flags().StringVar(&post.Profile, "profile", "", "profile the post was written for")
	cmd.Flags().StringVar(&post.Topic, "topic", "", "topic the post covers")
	cmd.Flags().StringVar(&post.Tone, "tone", "", "tone the post was written in")
	return cmd
}

func newGeneratedListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every generated post as JSON, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, db *database.DB) error {
				posts, err := db.ListGeneratedPosts(ctx)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), posts)
			})
		},
	}
}

func newGeneratedShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one generated post as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(ctx context.Context, db *database.DB) error {
				post, err := db.GetGeneratedPost(ctx, id)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), post)
			})
		},
	}
}

func newGeneratedScheduleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <id> <time>",
		Short: "Set when a generated post should be published",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			at, err := parseScheduleTime(args[1])
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(ctx context.Context, db *database.DB) error {
				if err := db.SchedulePost(ctx, id, at); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Scheduled post %d for %s\n", id, at.Format(time.RFC3339))
				return err
			})
		},
	}
}

func newGeneratedPublishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <id>",
		Short: "Mark a generated post as published",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(ctx context.Context, db *database.DB) error {
				if err := db.MarkPublished(ctx, id); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Marked post %d published\n", id)
				return err
			})
		},
	}
}

func newMetricsCmd(a *app) *cobra.Command {
	var (
		name  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print recorded analysis snapshots as JSON, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0, got %d", limit)
			}
			return a.withStore(cmd, func(ctx context.Context, db *database.DB) error {
				snapshots, err := db.ListMetrics(ctx, name, limit)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), snapshots)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "only this metric (default: all)")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of snapshots, 0 for all")
	return cmd
}
