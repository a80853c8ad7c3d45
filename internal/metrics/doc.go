// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package metrics provides Prometheus metrics collection and export.

All collectors are registered with the default registry through promauto
and exposed at /metrics by the API router:

	curl http://localhost:3860/metrics

# Available Metrics

Dataset Metrics:
  - storeboard_dataset_build_duration_seconds (histogram)
  - storeboard_dataset_builds_total (counter)
  - storeboard_dataset_records (gauge, label: kind)
  - storeboard_dataset_last_build_timestamp (gauge)

Analytics Metrics:
  - storeboard_analytics_compute_duration_seconds (histogram, label: computation)
  - storeboard_analytics_records_scanned_total (counter, label: computation)

API Metrics:
  - api_requests_total (counter, labels: method, endpoint, status_code)
  - api_request_duration_seconds (histogram, labels: method, endpoint)
  - api_active_requests (gauge)
  - api_rate_limit_hits_total (counter, label: endpoint)

Cache Metrics:
  - cache_hits_total, cache_misses_total (counters, label: cache_type)
  - cache_entries (gauge, label: cache_type)

# Usage

Record helpers wrap the collectors so callers never touch label ordering:

	start := time.Now()
	ds := dataset.Build(seed)
	metrics.RecordDatasetBuild(time.Since(start), len(ds.DailyMetrics), len(ds.ProductSales))

# Thread Safety

Prometheus collectors are safe for concurrent use.
*/
package metrics
