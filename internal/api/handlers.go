// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"context"
	"time"

	"github.com/tomtom215/storeboard/internal/cache"
	"github.com/tomtom215/storeboard/internal/config"
	"github.com/tomtom215/storeboard/internal/metrics"
	"github.com/tomtom215/storeboard/internal/middleware"
	"github.com/tomtom215/storeboard/internal/models"
)

// resultCacheType labels memoised analytics results in cache metrics.
const resultCacheType = "analytics"

// DatasetSource supplies datasets to the handlers. *dataset.Provider
// implements it.
type DatasetSource interface {
	Get(ctx context.Context, seed int64) (*models.SampleOverviewData, error)
	DefaultSeed() int64
	Ready() bool
	CacheStats() cache.Stats
}

// Handler serves the storeboard API.
type Handler struct {
	datasets  DatasetSource
	config    *config.Config
	cache     cache.Store[interface{}] // nil when result caching is disabled
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	provider := dataset.NewProvider(dataset.ProviderConfig{DefaultSeed: 42})
//	handler := api.NewHandler(provider, cfg)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":3860", router.SetupChi())
func NewHandler(datasets DatasetSource, cfg *config.Config) *Handler {
	h := &Handler{
		datasets:  datasets,
		config:    cfg,
		perfMon:   middleware.NewPerformanceMonitor(1000, middleware.DefaultSlowRequestThreshold),
		startTime: time.Now(),
	}

	if cfg.Cache.Enabled {
		h.cache = cache.NewStore[interface{}](cache.Config{
			Type:     cache.Type(cfg.Cache.Type),
			TTL:      cfg.Cache.TTL,
			Capacity: cfg.Cache.Capacity,
		})
	}

	return h
}

// ClearCache invalidates all memoised analytics results.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		metrics.SetCacheSize(resultCacheType, 0)
	}
}

// GetCacheStats returns result cache statistics.
func (h *Handler) GetCacheStats() cache.Stats {
	if h.cache != nil {
		return h.cache.GetStats()
	}
	return cache.Stats{}
}

// PerformanceMonitor returns the monitor the router installs as middleware.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

func (h *Handler) analyticsDefaults() analyticsDefaults {
	return analyticsDefaults{
		Range:    h.config.Analytics.DefaultPreset,
		Interval: h.config.Analytics.DefaultInterval,
		Compare:  h.config.Analytics.DefaultCompare,
		Seed:     h.datasets.DefaultSeed(),
		MaxLimit: h.config.Analytics.MaxProductLimit,
	}
}
