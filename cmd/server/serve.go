// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/postwright/internal/api"
	"github.com/tomtom215/postwright/internal/config"
	"github.com/tomtom215/postwright/internal/feedback"
	"github.com/tomtom215/postwright/internal/logging"
	"github.com/tomtom215/postwright/internal/supervisor"
	"github.com/tomtom215/postwright/internal/supervisor/services"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg
	logging.Info().Msg("Starting Postwright with supervisor tree")

	e, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer closeEngine(e)

	fb := feedback.NewService(e.db, logging.WithComponent("feedback"))

	// A typed nil would make the health check report a breaker it cannot read.
	var breaker api.BreakerStater
	if e.guard != nil {
		breaker = e.guard
	}
	handler := api.NewHandler(e.synthesizer, fb, e.db, breaker).WithPostStore(e.db)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromServer(&cfg.Server)))

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logging.WithComponent("supervisor")))
	if refresherEnabled(&cfg.Analysis) {
		tree.AddAnalysisService(services.NewSnapshotService(e.synthesizer, services.SnapshotServiceConfig{
			Interval:     cfg.Analysis.SnapshotInterval,
			RunOnStartup: cfg.Analysis.SnapshotOnStartup,
		}, logging.WithComponent("supervisor")))
	} else if cfg.Analysis.SnapshotInterval > 0 {
		logging.Warn().Msg("analysis.snapshot_interval is set but record_snapshots is off; refresher disabled")
	}

	logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown requested, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", serveErr)
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Postwright stopped gracefully")
	return nil
}

// refresherEnabled reports whether serve should run scheduled analysis
// passes. Passes exist only to record snapshots.
func refresherEnabled(cfg *config.AnalysisConfig) bool {
	return cfg.SnapshotInterval > 0 && cfg.RecordSnapshots
}
