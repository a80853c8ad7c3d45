// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/storeboard/internal/cache"
	"github.com/tomtom215/storeboard/internal/config"
	"github.com/tomtom215/storeboard/internal/dataset"
	"github.com/tomtom215/storeboard/internal/models"
)

var testEnd = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

var (
	sharedDatasetOnce sync.Once
	sharedDataset     *models.SampleOverviewData
)

func buildDataset(seed int64) *models.SampleOverviewData {
	return dataset.BuildWithOptions(dataset.Options{
		Seed:     seed,
		End:      testEnd,
		Location: time.UTC,
		Now:      func() time.Time { return testEnd },
	})
}

// defaultDataset is built once and shared read-only across tests.
func defaultDataset() *models.SampleOverviewData {
	sharedDatasetOnce.Do(func() {
		sharedDataset = buildDataset(dataset.DefaultSeed)
	})
	return sharedDataset
}

var errSourceDown = errors.New("source down")

// fakeSource is a DatasetSource over prebuilt datasets.
type fakeSource struct {
	ready bool
	err   error
	gets  atomic.Int64
}

func (f *fakeSource) Get(ctx context.Context, seed int64) (*models.SampleOverviewData, error) {
	f.gets.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if seed == dataset.DefaultSeed {
		return defaultDataset(), nil
	}
	return buildDataset(seed), nil
}

func (f *fakeSource) DefaultSeed() int64      { return dataset.DefaultSeed }
func (f *fakeSource) Ready() bool             { return f.ready }
func (f *fakeSource) CacheStats() cache.Stats { return cache.Stats{TotalKeys: 1} }

func testConfig() *config.Config {
	return &config.Config{
		Analytics: config.AnalyticsConfig{
			DefaultPreset:   "30d",
			DefaultInterval: "day",
			MaxProductLimit: 25,
		},
		Cache: config.CacheConfig{
			Enabled: true,
			Type:    "ttl",
			TTL:     time.Minute,
		},
		Security: config.SecurityConfig{
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
	}
}

// newTestServer returns a routed handler over a ready fakeSource.
func newTestServer(t *testing.T, cfg *config.Config) (http.Handler, *Handler, *fakeSource) {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	src := &fakeSource{ready: true}
	h := NewHandler(src, cfg)
	return NewRouter(h, cfg).SetupChi(), h, src
}

// testEnvelope mirrors models.APIResponse with the payload left raw.
type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, env testEnvelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}
