// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/storeboard/internal/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateAnalytics(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Dataset bounds
const (
	minDatasetDays   = 1
	maxDatasetDays   = 3660
	maxDatasetCached = 1024
)

func (c *Config) validateDataset() error {
	if c.Dataset.Days < minDatasetDays || c.Dataset.Days > maxDatasetDays {
		return fmt.Errorf("DATASET_DAYS must be between %d and %d", minDatasetDays, maxDatasetDays)
	}
	if c.Dataset.MaxCached < 1 || c.Dataset.MaxCached > maxDatasetCached {
		return fmt.Errorf("DATASET_MAX_CACHED must be between 1 and %d", maxDatasetCached)
	}
	if c.Dataset.TTL <= 0 {
		return fmt.Errorf("DATASET_TTL must be positive")
	}
	if _, err := c.Dataset.Location(); err != nil {
		return fmt.Errorf("DATASET_TIMEZONE is invalid: %w", err)
	}
	return nil
}

var validPresets = map[string]bool{
	"7d":  true,
	"30d": true,
	"90d": true,
}

var validIntervals = map[string]bool{
	"day":  true,
	"week": true,
}

func (c *Config) validateAnalytics() error {
	if !validPresets[c.Analytics.DefaultPreset] {
		return fmt.Errorf("ANALYTICS_DEFAULT_RANGE must be one of: 7d, 30d, 90d")
	}
	if !validIntervals[c.Analytics.DefaultInterval] {
		return fmt.Errorf("ANALYTICS_DEFAULT_INTERVAL must be one of: day, week")
	}
	if c.Analytics.MaxProductLimit < 1 {
		return fmt.Errorf("ANALYTICS_MAX_PRODUCT_LIMIT must be at least 1")
	}
	return nil
}

var validCacheTypes = map[string]bool{
	"ttl": true,
	"lru": true,
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if !validCacheTypes[c.Cache.Type] {
		return fmt.Errorf("CACHE_TYPE must be one of: ttl, lru")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.Cache.Type == "lru" && c.Cache.Capacity < 1 {
		return fmt.Errorf("CACHE_CAPACITY must be at least 1 for the lru cache")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects malformed origins. A wildcard is accepted; it is
// reported by ShouldWarnAboutCORS in production.
func (c *Config) validateCORS() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		if err := validateOrigin(origin); err != nil {
			return fmt.Errorf("CORS_ORIGINS is invalid: %w", err)
		}
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has concerns
// that should be logged at startup.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
