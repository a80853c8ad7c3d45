// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/storeboard/internal/logging"
)

// DefaultSlowRequestThreshold is used when NewPerformanceMonitor is given
// a non-positive threshold.
const DefaultSlowRequestThreshold = time.Second

// RequestMetrics is one observed request.
type RequestMetrics struct {
	Route      string    `json:"route"`
	Method     string    `json:"method"`
	DurationMS int64     `json:"duration_ms"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
}

// EndpointStats summarises the retained requests of one method and route.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int64   `json:"request_count"`
	AvgDuration  float64 `json:"avg_duration_ms"`
	P50Duration  int64   `json:"p50_duration_ms"`
	P95Duration  int64   `json:"p95_duration_ms"`
	P99Duration  int64   `json:"p99_duration_ms"`
	MinDuration  int64   `json:"min_duration_ms"`
	MaxDuration  int64   `json:"max_duration_ms"`
}

// PerformanceMonitor keeps a sliding window of recent request timings.
type PerformanceMonitor struct {
	mu            sync.RWMutex
	metrics       []RequestMetrics
	maxMetrics    int
	slowThreshold time.Duration
}

// NewPerformanceMonitor retains the last maxMetrics requests and logs a
// warning for requests slower than slowThreshold.
func NewPerformanceMonitor(maxMetrics int, slowThreshold time.Duration) *PerformanceMonitor {
	if maxMetrics <= 0 {
		maxMetrics = 1000
	}
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowRequestThreshold
	}
	return &PerformanceMonitor{
		metrics:       make([]RequestMetrics, 0, maxMetrics),
		maxMetrics:    maxMetrics,
		slowThreshold: slowThreshold,
	}
}

// RecordRequest appends a request, dropping the oldest beyond capacity.
func (pm *PerformanceMonitor) RecordRequest(metric RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if len(pm.metrics) == pm.maxMetrics {
		copy(pm.metrics, pm.metrics[1:])
		pm.metrics = pm.metrics[:len(pm.metrics)-1]
	}
	pm.metrics = append(pm.metrics, metric)
}

// GetStats returns per-endpoint statistics, busiest first.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	byEndpoint := make(map[string][]int64)
	for _, m := range pm.metrics {
		key := m.Method + " " + m.Route
		byEndpoint[key] = append(byEndpoint[key], m.DurationMS)
	}
	pm.mu.RUnlock()

	stats := make([]EndpointStats, 0, len(byEndpoint))
	for endpoint, durations := range byEndpoint {
		sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

		var sum int64
		for _, d := range durations {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: int64(len(durations)),
			AvgDuration:  float64(sum) / float64(len(durations)),
			P50Duration:  percentile(durations, 0.50),
			P95Duration:  percentile(durations, 0.95),
			P99Duration:  percentile(durations, 0.99),
			MinDuration:  durations[0],
			MaxDuration:  durations[len(durations)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})

	return stats
}

// GetRecentMetrics returns up to n of the most recent requests, oldest first.
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	n = max(0, min(n, len(pm.metrics)))
	recent := make([]RequestMetrics, n)
	copy(recent, pm.metrics[len(pm.metrics)-n:])
	return recent
}

// Middleware records every request passing through next.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		elapsed := time.Since(start)
		route := RoutePattern(r)
		pm.RecordRequest(RequestMetrics{
			Route:      route,
			Method:     r.Method,
			DurationMS: elapsed.Milliseconds(),
			StatusCode: wrapper.statusCode,
			Timestamp:  start,
		})

		if elapsed > pm.slowThreshold {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("route", route).
				Dur("duration", elapsed).
				Dur("threshold", pm.slowThreshold).
				Msg("Slow request detected")
		}
	})
}

func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}
