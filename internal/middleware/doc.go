// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: assigns or propagates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge per chi route
  - Compression: gzip for clients that accept it
  - PerformanceMonitor: sliding window of request timings with slow-request logging

RequestID, PrometheusMetrics and Compression are http.HandlerFunc decorators;
the API router adapts them to chi's func(http.Handler) http.Handler form.

Route labels come from chi's route pattern rather than the raw path, so
metrics stay bounded no matter what clients request:

	r := chi.NewRouter()
	r.Use(adapt(middleware.RequestID))
	r.Use(adapt(middleware.PrometheusMetrics))
	r.Get("/api/v1/analytics/kpis", h.AnalyticsKPIs)
*/
package middleware
