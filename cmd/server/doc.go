// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package main is the entry point for the storeboard server.

Storeboard serves the performance analytics behind a storefront admin
console. Every response is computed from a deterministic synthetic dataset
(12 locations, 25 products, a 120-day window ending today) so the console
can be developed and demonstrated without a live order system.

# Process Layout

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("storeboard")
	├── DataSupervisor ("data-layer")
	│   └── Dataset warm-up and midnight rollover
	└── APISupervisor ("api-layer")
	    └── HTTP server (chi router)

Readiness (/api/v1/health/ready) reports not_ready until the warm-up has
built the default dataset.

# Configuration

Configuration is loaded via Koanf v2 (highest priority wins):
  - Environment variables (HTTP_PORT, DATASET_SEED, LOG_LEVEL, ...)
  - Config file (config.yaml, or the path in CONFIG_PATH)
  - Built-in defaults

When a config file is present it is watched; a change to logging.level is
applied without a restart. Other settings need a restart.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops
accepting connections and drains in-flight requests within
server.shutdown_timeout.

# Example Usage

	export DATASET_SEED=7
	export LOG_FORMAT=console
	./storeboard

	curl 'http://localhost:3860/api/v1/analytics/overview?range=90d&interval=week&compare=true'
*/
package main
