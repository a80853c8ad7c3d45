// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatasetConfig controls synthetic dataset generation.
type DatasetConfig struct {
	// Seed is used when a request does not name one.
	Seed int64 `koanf:"seed"`

	// Days is the length of the generated window ending today.
	Days int `koanf:"days"`

	// Timezone decides where "today" starts. "Local" uses the host zone.
	Timezone string `koanf:"timezone"`

	// MaxCached bounds how many seeded datasets are held in memory.
	MaxCached int `koanf:"max_cached"`

	// TTL bounds how long a built dataset is reused.
	TTL time.Duration `koanf:"ttl"`
}

// Location resolves Timezone.
func (d DatasetConfig) Location() (*time.Location, error) {
	if d.Timezone == "" || d.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", d.Timezone, err)
	}
	return loc, nil
}

// AnalyticsConfig holds request defaults for the analytics API.
type AnalyticsConfig struct {
	DefaultPreset   string `koanf:"default_preset"`
	DefaultInterval string `koanf:"default_interval"`

	// DefaultCompare attaches previous-period values to time series when
	// the request does not say otherwise.
	DefaultCompare bool `koanf:"default_compare"`

	// MaxProductLimit caps the limit query parameter of product rankings.
	MaxProductLimit int `koanf:"max_product_limit"`
}

// CacheConfig controls memoisation of computed analytics responses.
type CacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Type     string        `koanf:"type"` // ttl or lru
	TTL      time.Duration `koanf:"ttl"`
	Capacity int           `koanf:"capacity"` // lru only
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from, in increasing priority:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
func Load() (*Config, error) {
	return LoadWithKoanf()
}
