// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/storeboard/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dataset state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK once the default dataset has been built, 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.datasets.Ready()

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	datasetCache := h.datasets.CacheStats()
	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"dataset_ready":   ready,
			"datasets_cached": datasetCache.TotalKeys,
			"ready_to_serve":  ready,
			"uptime":          time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthPerformance returns per-route latency statistics and cache hit
// rates for the running process.
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	results := h.GetCacheStats()
	datasets := h.datasets.CacheStats()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"endpoints": h.perfMon.GetStats(),
			"result_cache": map[string]interface{}{
				"entries":  results.TotalKeys,
				"hits":     results.Hits,
				"misses":   results.Misses,
				"hit_rate": results.HitRate(),
			},
			"dataset_cache": map[string]interface{}{
				"entries":  datasets.TotalKeys,
				"hits":     datasets.Hits,
				"misses":   datasets.Misses,
				"hit_rate": datasets.HitRate(),
			},
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
