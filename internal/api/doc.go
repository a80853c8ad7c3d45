// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package api provides the read-only HTTP surface over the analytics engine.

Every endpoint answers with the standard envelope:

	{
	  "status": "success",
	  "data": { ... },
	  "metadata": {"timestamp": "...", "query_time_ms": 3, "cached": false, "seed": 42},
	  "error": null
	}

# Endpoints

Health:
  - GET /api/v1/health/live: process liveness
  - GET /api/v1/health/ready: 503 until the default dataset has been built
  - GET /api/v1/health/performance: per-route latency statistics

Catalog:
  - GET /api/v1/catalog/locations
  - GET /api/v1/catalog/products
  - GET /api/v1/catalog/summary: dataset window, record counts, generation time

Analytics (all accept the filter query parameters below):
  - GET /api/v1/analytics/overview: every derived structure in one response
  - GET /api/v1/analytics/kpis
  - GET /api/v1/analytics/timeseries
  - GET /api/v1/analytics/channel-mix
  - GET /api/v1/analytics/locations (format=csv supported)
  - GET /api/v1/analytics/products (format=csv supported)
  - GET /api/v1/analytics/customers
  - GET /api/v1/analytics/platforms
  - GET /api/v1/analytics/heatmap

Prometheus metrics are served at /metrics.

# Query Parameters

	range      7d | 30d | 90d | custom
	start      YYYY-MM-DD (1900-2999), custom range only
	end        YYYY-MM-DD (1900-2999), custom range only
	interval   day | week
	channel    all | pickup | delivery | catering
	locations  comma-separated location IDs, empty means all
	compare    true | false, attach previous-period values to time series
	seed       dataset seed, defaults to the configured seed
	sort       revenue | units (products)
	limit      maximum products returned, 0 means all
	format     json | csv

Invalid parameters yield 400 with code VALIDATION_ERROR.

# Caching

Computed results are memoised by endpoint, seed, dataset end date and the
normalised filter, so a new calendar day never serves yesterday's numbers.
*/
package api
