// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/storeboard/internal/metrics"
	"github.com/tomtom215/storeboard/internal/middleware"
)

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestServer(t, nil)
	rec := doGet(t, router, "/api/v1/analytics/unknown")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != codeNotFound {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/analytics/kpis", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != codeMethodNotAllowed {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestRouter_RequestIDAndSecurityHeaders(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestServer(t, nil)
	rec := doGet(t, router, "/api/v1/health/live")

	if _, err := uuid.Parse(rec.Header().Get(middleware.RequestIDHeader)); err != nil {
		t.Errorf("X-Request-ID is not a UUID: %v", err)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing X-Content-Type-Options")
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("missing X-Frame-Options")
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Security.CORSOrigins = []string{"https://console.example.com"}
	router, _, _ := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analytics/kpis", nil)
	req.Header.Set("Origin", "https://console.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://console.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouter_Gzip(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/overview", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q", rec.Header().Get("Content-Encoding"))
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(body), `"heatmap"`) {
		t.Error("decompressed overview is missing the heatmap")
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Security.RateLimitReqs = 2
	cfg.Security.RateLimitWindow = time.Minute
	router, _, _ := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		if rec := doGet(t, router, "/api/v1/catalog/locations"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}

	rec := doGet(t, router, "/api/v1/catalog/locations")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != codeRateLimitExceeded {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestRouter_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Security.RateLimitReqs = 1
	cfg.Security.RateLimitDisabled = true
	router, _, _ := newTestServer(t, cfg)

	for i := 0; i < 5; i++ {
		if rec := doGet(t, router, "/api/v1/catalog/products"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
}

func TestRouter_PrometheusMetrics(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestServer(t, nil)
	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/analytics/platforms", "200")
	before := testutil.ToFloat64(counter)

	doGet(t, router, "/api/v1/analytics/platforms")

	if got := testutil.ToFloat64(counter) - before; got < 1 {
		t.Errorf("request counter moved by %v, want at least 1", got)
	}

	rec := doGet(t, router, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("/metrics does not expose api_requests_total")
	}
}
