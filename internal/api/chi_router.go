// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/storeboard/internal/config"
	"github.com/tomtom215/storeboard/internal/middleware"
)

// Router wires the handler into a Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router using the security section of cfg for CORS
// and rate limiting.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(cfg.Security)),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to handle OPTIONS preflight
	r.Use(chiMiddleware(middleware.Compression))
	r.Use(router.handler.perfMon.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, codeNotFound, "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/performance", router.handler.HealthPerformance)
	})

	// ========================
	// Catalog Endpoints
	// ========================
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/locations", router.handler.CatalogLocations)
		r.Get("/products", router.handler.CatalogProducts)
		r.Get("/summary", router.handler.CatalogSummary)
	})

	// ========================
	// Analytics Endpoints
	// ========================
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/overview", router.handler.AnalyticsOverview)
		r.Get("/kpis", router.handler.AnalyticsKPIs)
		r.Get("/timeseries", router.handler.AnalyticsTimeSeries)
		r.Get("/channel-mix", router.handler.AnalyticsChannelMix)
		r.Get("/customers", router.handler.AnalyticsCustomers)
		r.Get("/platforms", router.handler.AnalyticsPlatforms)
		r.Get("/heatmap", router.handler.AnalyticsHeatmap)

		// Leaderboards double as CSV reports
		r.With(router.chiMiddleware.RateLimitExport()).Get("/locations", router.handler.AnalyticsLocations)
		r.With(router.chiMiddleware.RateLimitExport()).Get("/products", router.handler.AnalyticsProducts)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
