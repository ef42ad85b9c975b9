// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/postwright/internal/database"
	"github.com/tomtom215/postwright/internal/legacyimport"
	"github.com/tomtom215/postwright/internal/logging"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		path      string
		batchSize int
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import collected posts from the legacy SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = a.cfg.Legacy.Path
			}

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

			importer := legacyimport.NewImporter(legacyimport.Options{
				Path:      path,
				BatchSize: batchSize,
				DryRun:    dryRun,
			}, db, logging.WithComponent("import"))

			stats, err := importer.Import(ctx)
			if werr := writeJSON(cmd.OutOrStdout(), stats); werr != nil {
				return werr
			}
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "legacy SQLite database (default: legacy.path)")
	cmd.Flags().IntVar(&batchSize, "batch-size", legacyimport.DefaultBatchSize, "rows read per batch")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "read and map rows without writing")
	return cmd
}
