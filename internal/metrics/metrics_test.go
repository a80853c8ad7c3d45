// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package metrics

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordDatasetBuild(t *testing.T) {
	before := testutil.ToFloat64(DatasetBuildsTotal)

	RecordDatasetBuild(40*time.Millisecond, 1440, 25000)

	if got := testutil.ToFloat64(DatasetBuildsTotal); got != before+1 {
		t.Errorf("DatasetBuildsTotal = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(DatasetRecords.WithLabelValues("daily_metrics")); got != 1440 {
		t.Errorf("daily_metrics gauge = %v, want 1440", got)
	}
	if got := testutil.ToFloat64(DatasetRecords.WithLabelValues("product_sales")); got != 25000 {
		t.Errorf("product_sales gauge = %v, want 25000", got)
	}
	if testutil.ToFloat64(DatasetLastBuild) == 0 {
		t.Error("expected last build timestamp to be set")
	}
}

func TestRecordAnalyticsComputation(t *testing.T) {
	tests := []struct {
		computation string
		records     int
	}{
		{"kpis", 360},
		{"time_series", 720},
		{"heatmap", 0},
	}

	for _, tt := range tests {
		t.Run(tt.computation, func(t *testing.T) {
			counter := AnalyticsRecordsScanned.WithLabelValues(tt.computation)
			before := testutil.ToFloat64(counter)

			RecordAnalyticsComputation(tt.computation, time.Millisecond, tt.records)

			if got := testutil.ToFloat64(counter); got != before+float64(tt.records) {
				t.Errorf("records scanned = %v, want %v", got, before+float64(tt.records))
			}

			m := &dto.Metric{}
			observer := AnalyticsComputeDuration.WithLabelValues(tt.computation).(prometheus.Histogram)
			if err := observer.Write(m); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if m.GetHistogram().GetSampleCount() == 0 {
				t.Error("expected at least one duration observation")
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/analytics/kpis", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/analytics/kpis", "200", 5*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("api_requests_total = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := CacheHits.WithLabelValues("analytics")
	misses := CacheMisses.WithLabelValues("analytics")
	h0, m0 := testutil.ToFloat64(hits), testutil.ToFloat64(misses)

	RecordCacheLookup("analytics", true)
	RecordCacheLookup("analytics", true)
	RecordCacheLookup("analytics", false)

	if got := testutil.ToFloat64(hits); got != h0+2 {
		t.Errorf("hits = %v, want %v", got, h0+2)
	}
	if got := testutil.ToFloat64(misses); got != m0+1 {
		t.Errorf("misses = %v, want %v", got, m0+1)
	}
}

func TestSetCacheSize(t *testing.T) {
	for i := 0; i < 3; i++ {
		SetCacheSize("dataset", i)
		if got := testutil.ToFloat64(CacheSize.WithLabelValues("dataset")); got != float64(i) {
			t.Errorf("cache size = %v, want %d", got, i)
		}
	}
}

func TestRecordRateLimitHit(t *testing.T) {
	counter := APIRateLimitHits.WithLabelValues("/api/v1/analytics")
	before := testutil.ToFloat64(counter)

	for i := 0; i < 5; i++ {
		RecordRateLimitHit("/api/v1/analytics")
	}

	if got := testutil.ToFloat64(counter); got != before+5 {
		t.Errorf("rate limit hits = %v, want %v", got, before+5)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.2.3", "go1.25")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.2.3", "go1.25")); got != 1 {
		t.Errorf("app_info = %v, want 1", got)
	}
}

func TestMetricsLint(t *testing.T) {
	RecordAPIRequest("GET", "/lint", strconv.Itoa(200), time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("metric %s: %s", p.Metric, p.Text)
	}
}
