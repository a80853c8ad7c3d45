// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package logging provides centralized zerolog-based logging for Storeboard.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})

	logging.Info().Int64("seed", 42).Msg("Dataset built")
	logging.Err(err).Msg("Server error")

	// With request context (request_id, correlation_id, seed)
	ctx = logging.ContextWithSeed(ctx, 42)
	logging.Ctx(ctx).Debug().Str("preset", "30d").Msg("Filters resolved")

Every line carries "service" (default storeboard) and, when Config.Version
is set, "version".

# Configuration

Levels: trace, debug, info, warn, error, fatal, panic, disabled.
Formats: json (production) or console (development).

The config package maps LOG_LEVEL, LOG_FORMAT and LOG_CALLER onto this
Config.

# slog Interop

SlogHandler adapts zerolog to log/slog for libraries that require an
*slog.Logger, such as the sutureslog event hook used by the supervisor tree:

	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}

# Conventions

Always terminate log chains with .Msg() or .Send(), and prefer structured
fields over Msgf.
*/
package logging
