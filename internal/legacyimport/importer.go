// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package legacyimport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/postwright/internal/metrics"
	"github.com/tomtom215/postwright/internal/models"
)

// DefaultBatchSize is the number of legacy rows read per query.
const DefaultBatchSize = 500

// Store receives imported posts.
type Store interface {
	UpsertCollectedPost(ctx context.Context, post *models.CollectedPost) (int64, error)
}

// Options configures an import run.
type Options struct {
	// Path is the legacy SQLite database file.
	Path string
	// BatchSize defaults to DefaultBatchSize.
	BatchSize int
	// DryRun reads and maps rows without writing them.
	DryRun bool
}

// ImportStats holds statistics about an import operation.
type ImportStats struct {
	TotalRecords int64 `json:"total_records"`
	// Read is the number of rows read from the legacy table.
	Read int64 `json:"read"`
	// Imported is the number of rows upserted (or that would be, on a dry run).
	Imported int64 `json:"imported"`
	// Skipped is the number of rows that could not be mapped.
	Skipped int64 `json:"skipped"`
	// Errors is the number of rows the store rejected.
	Errors int64 `json:"errors"`

	LastProcessedID int64     `json:"last_processed_id"`
	DryRun          bool      `json:"dry_run"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
}

// Duration returns the duration of the import operation.
func (s *ImportStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Importer copies the legacy posts table into the post store.
type Importer struct {
	opts   Options
	store  Store
	logger zerolog.Logger
	now    func() time.Time
}

// NewImporter creates an importer.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func NewImporter(opts Options, store Store, logger zerolog.Logger) *Importer {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	return &Importer{
		opts:   opts,
		store:  store,
		logger: logger.With().Str("component", "legacyimport").Logger(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Import runs the import. The returned stats are always non-nil.
func (i *Importer) Import(ctx context.Context) (*ImportStats, error) {
	stats := &ImportStats{StartTime: time.Now(), DryRun: i.opts.DryRun}
	defer func() { stats.EndTime = time.Now() }()

	if i.opts.Path == "" {
		return stats, errors.New("legacy database path is empty")
	}

	reader, err := NewSQLiteReader(i.opts.Path)
	if err != nil {
		return stats, fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			i.logger.Warn().Err(closeErr).Msg("Error closing SQLite reader")
		}
	}()

	total, err := reader.CountRecords(ctx)
	if err != nil {
		return stats, fmt.Errorf("count records: %w", err)
	}
	stats.TotalRecords = total
	i.logger.Info().Int64("total_records", total).Str("path", i.opts.Path).Bool("dry_run", i.opts.DryRun).Msg("Starting import")

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		batch, err := reader.ReadBatch(ctx, stats.LastProcessedID, i.opts.BatchSize)
		if err != nil {
			return stats, fmt.Errorf("read batch after id %d: %w", stats.LastProcessedID, err)
		}
		if len(batch) == 0 {
			break
		}
		i.processBatch(ctx, batch, stats)
	}

	metrics.RecordLegacyImport(int(stats.Imported), int(stats.Skipped+stats.Errors))
	i.logger.Info().
		Int64("read", stats.Read).
		Int64("imported", stats.Imported).
		Int64("skipped", stats.Skipped).
		Int64("errors", stats.Errors).
		Dur("duration", stats.Duration()).
		Msg("Import completed")

	return stats, nil
}

func (i *Importer) processBatch(ctx context.Context, batch []LegacyRecord, stats *ImportStats) {
	for idx := range batch {
		rec := &batch[idx]
		stats.Read++
		stats.LastProcessedID = rec.ID

		post, err := toCollectedPost(rec, i.now())
		if err != nil {
			stats.Skipped++
			i.logger.Debug().Int64("legacy_id", rec.ID).Err(err).Msg("Skipping legacy row")
			continue
		}

		if i.opts.DryRun {
			stats.Imported++
			continue
		}

		if _, err := i.store.UpsertCollectedPost(ctx, &post); err != nil {
			stats.Errors++
			i.logger.Warn().Int64("legacy_id", rec.ID).Err(err).Msg("Failed to import legacy row")
			continue
		}
		stats.Imported++
	}
}
