// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset Metrics
	DatasetBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storeboard_dataset_build_duration_seconds",
			Help:    "Duration of synthetic dataset builds in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	DatasetBuildsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storeboard_dataset_builds_total",
			Help: "Total number of synthetic dataset builds",
		},
	)

	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storeboard_dataset_records",
			Help: "Number of records in the most recently built dataset",
		},
		[]string{"kind"}, // "daily_metrics", "product_sales"
	)

	DatasetLastBuild = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storeboard_dataset_last_build_timestamp",
			Help: "Unix timestamp of the last dataset build",
		},
	)

	// Analytics Metrics
	AnalyticsComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storeboard_analytics_compute_duration_seconds",
			Help:    "Duration of derived-metric computations in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"computation"},
	)

	AnalyticsRecordsScanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storeboard_analytics_records_scanned_total",
			Help: "Total number of filtered records fed to derived-metric computations",
		},
		[]string{"computation"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "dataset", "analytics"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDatasetBuild records a completed dataset build.
func RecordDatasetBuild(duration time.Duration, dailyMetrics, productSales int) {
	DatasetBuildDuration.Observe(duration.Seconds())
	DatasetBuildsTotal.Inc()
	DatasetRecords.WithLabelValues("daily_metrics").Set(float64(dailyMetrics))
	DatasetRecords.WithLabelValues("product_sales").Set(float64(productSales))
	DatasetLastBuild.Set(float64(time.Now().Unix()))
}

// RecordAnalyticsComputation records one derived-metric computation over
// the given number of input records.
func RecordAnalyticsComputation(computation string, duration time.Duration, records int) {
	AnalyticsComputeDuration.WithLabelValues(computation).Observe(duration.Seconds())
	AnalyticsRecordsScanned.WithLabelValues(computation).Add(float64(records))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup records a hit or miss for the named cache.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
		return
	}
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// SetCacheSize reports the current entry count of the named cache.
func SetCacheSize(cacheType string, entries int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(entries))
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// SetAppInfo publishes the running version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
