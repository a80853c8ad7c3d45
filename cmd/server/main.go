// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tomtom215/storeboard/internal/api"
	"github.com/tomtom215/storeboard/internal/config"
	"github.com/tomtom215/storeboard/internal/dataset"
	"github.com/tomtom215/storeboard/internal/logging"
	"github.com/tomtom215/storeboard/internal/metrics"
	"github.com/tomtom215/storeboard/internal/supervisor"
	"github.com/tomtom215/storeboard/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Version:   version,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Int64("seed", cfg.Dataset.Seed).
		Int("days", cfg.Dataset.Days).
		Str("timezone", cfg.Dataset.Timezone).
		Msg("Starting storeboard")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("CORS allows any origin in production; set CORS_ORIGINS to the console's origin")
	}

	metrics.SetAppInfo(version, runtime.Version())

	loc, err := cfg.Dataset.Location()
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid dataset timezone")
	}

	provider := dataset.NewProvider(dataset.ProviderConfig{
		DefaultSeed: cfg.Dataset.Seed,
		Days:        cfg.Dataset.Days,
		Location:    loc,
		MaxDatasets: cfg.Dataset.MaxCached,
		TTL:         cfg.Dataset.TTL,
	})

	handler := api.NewHandler(provider, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	watchLogLevel()

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewDatasetWarmupService(provider, services.DatasetWarmupConfig{
		Location:   loc,
		OnRollover: handler.ClearCache,
	}))
	tree.AddAPIService(services.NewHTTPServerService(server, services.HTTPServiceConfig{
		Addr:            server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("component", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Storeboard stopped")
}

// watchLogLevel re-reads the config file on change and applies a new log
// level. Anything else in the file needs a restart.
func watchLogLevel() {
	path := config.FilePath()
	if path == "" {
		return
	}

	err := config.WatchConfigFile(path, func() {
		cfg, err := config.Load()
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Ignoring invalid config change")
			return
		}
		if cfg.Logging.Level == logging.GetLevel().String() {
			return
		}
		if logging.SetLevelString(cfg.Logging.Level) {
			logging.Info().Str("level", cfg.Logging.Level).Msg("Log level changed")
		}
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
	}
}
