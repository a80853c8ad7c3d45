// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package config provides centralized configuration management for Storeboard.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The result is validated section by
section before use.

# Config File

The first existing file of CONFIG_PATH, config.yaml, config.yml,
/etc/storeboard/config.yaml and /etc/storeboard/config.yml is loaded:

	server:
	  port: 3860
	dataset:
	  seed: 42
	  days: 120
	  timezone: America/Chicago
	analytics:
	  default_preset: 30d
	  default_interval: day
	cache:
	  type: lru
	  capacity: 256
	security:
	  cors_origins:
	    - https://admin.example.com

# Environment Variables

Server:
  - HTTP_PORT: Listen port (default: 3860)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production (default: development)

Dataset:
  - DATASET_SEED: Seed used when a request names none (default: 42)
  - DATASET_DAYS: Window length ending today (default: 120)
  - DATASET_TIMEZONE: IANA zone defining local midnight (default: Local)
  - DATASET_MAX_CACHED: Seeded datasets kept in memory (default: 8)
  - DATASET_TTL: Maximum reuse of a built dataset (default: 24h)

Analytics:
  - ANALYTICS_DEFAULT_RANGE: 7d, 30d or 90d (default: 30d)
  - ANALYTICS_DEFAULT_INTERVAL: day or week (default: day)
  - ANALYTICS_DEFAULT_COMPARE: Include previous period (default: false)
  - ANALYTICS_MAX_PRODUCT_LIMIT: Upper bound for limit (default: 25)

Cache:
  - CACHE_ENABLED: Memoise analytics responses (default: true)
  - CACHE_TYPE: ttl or lru (default: ttl)
  - CACHE_TTL: Entry lifetime (default: 5m)
  - CACHE_CAPACITY: Maximum entries for lru (default: 512)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error, fatal, panic, disabled (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}

# Reload

Only the log level is applied at runtime. FilePath names the file Load
read, and WatchConfigFile reports changes to it through the koanf file
provider's fsnotify watcher.
*/
package config
