// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/storeboard/internal/analytics"
	"github.com/tomtom215/storeboard/internal/cache"
	"github.com/tomtom215/storeboard/internal/logging"
	"github.com/tomtom215/storeboard/internal/metrics"
	"github.com/tomtom215/storeboard/internal/models"
)

// AnalyticsQueryExecutor encapsulates the common flow of the analytics
// handlers:
//
//  1. Parse and validate the filter query parameters
//  2. Fetch the dataset for the requested seed
//  3. Return a memoised result if one exists for (endpoint, seed, end date, filter)
//  4. Otherwise compute, record the computation metrics and memoise
//  5. Respond with JSON, or CSV when the endpoint supports it and format=csv
type AnalyticsQueryExecutor struct {
	handler *Handler
}

// NewAnalyticsQueryExecutor creates a new analytics query executor instance.
func NewAnalyticsQueryExecutor(h *Handler) *AnalyticsQueryExecutor {
	return &AnalyticsQueryExecutor{handler: h}
}

// AnalyticsQueryFunc computes one analytics result. state is already
// normalised. The returned value must be JSON-serializable and is shared
// between requests once cached, so it must not be modified afterwards.
type AnalyticsQueryFunc func(ds *models.SampleOverviewData, state models.FilterState, q *analyticsQuery) interface{}

// CSVExportFunc renders a result computed by the matching AnalyticsQueryFunc.
type CSVExportFunc func(buf *bytes.Buffer, data interface{}) error

// resultKey identifies a memoised result. The dataset end date is part of
// the key so results roll over with the calendar day.
type resultKey struct {
	Seed    int64              `json:"seed"`
	EndDate string             `json:"end_date"`
	Filters models.FilterState `json:"filters"`
	Compare bool               `json:"compare"`
	Sort    string             `json:"sort"`
	Limit   int                `json:"limit"`
}

// Execute runs queryFunc for a JSON-only endpoint.
func (e *AnalyticsQueryExecutor) Execute(w http.ResponseWriter, r *http.Request, name string, queryFunc AnalyticsQueryFunc) {
	e.ExecuteExportable(w, r, name, queryFunc, "", nil)
}

// ExecuteExportable runs queryFunc and, when the request asks for
// format=csv, renders the result with exportFunc into an attachment named
// after exportName and the resolved date range.
func (e *AnalyticsQueryExecutor) ExecuteExportable(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	queryFunc AnalyticsQueryFunc,
	exportName string,
	exportFunc CSVExportFunc,
) {
	h := e.handler
	start := time.Now()

	query, apiErr := parseAnalyticsRequest(r, h.analyticsDefaults())
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if query.Format == formatCSV && exportFunc == nil {
		respondError(w, http.StatusBadRequest, codeValidation, ErrExportNotSupported.Error(), nil)
		return
	}

	ctx := logging.ContextWithSeed(r.Context(), query.Seed)
	ds, err := h.datasets.Get(ctx, query.Seed)
	if err != nil {
		logging.CtxErr(ctx, err).Str("query", name).Msg("Dataset unavailable")
		respondError(w, http.StatusServiceUnavailable, codeDatasetError, ErrDatasetUnavailable.Error(), nil)
		return
	}

	state := analytics.Normalize(query.Filters)
	cacheKey := cache.GenerateKey(name, resultKey{
		Seed:    ds.Seed,
		EndDate: ds.EndDate,
		Filters: state,
		Compare: query.Compare,
		Sort:    string(query.Sort),
		Limit:   query.Limit,
	})

	var (
		data   interface{}
		cached bool
	)
	if h.cache != nil {
		data, cached = h.cache.Get(cacheKey)
		metrics.RecordCacheLookup(resultCacheType, cached)
	}

	if !cached {
		computeStart := time.Now()
		data = queryFunc(ds, state, query)
		metrics.RecordAnalyticsComputation(name, time.Since(computeStart), len(ds.DailyMetrics))

		if h.cache != nil {
			h.cache.Set(cacheKey, data)
			metrics.SetCacheSize(resultCacheType, h.cache.Len())
		}

		logging.Ctx(ctx).Debug().
			Str("query", name).
			Str("preset", string(state.Preset)).
			Str("channel", string(state.Channel)).
			Dur("duration", time.Since(computeStart)).
			Msg("Analytics computed")
	}

	if query.Format == formatCSV {
		current, _ := analytics.ResolveDateRanges(state, ds.EndDate)
		filename := fmt.Sprintf("storeboard_%s_%s_to_%s.csv", exportName, current.Start, current.End)
		respondCSV(w, filename, func(buf *bytes.Buffer) error {
			return exportFunc(buf, data)
		})
		return
	}

	seed := ds.Seed
	metadata := models.Metadata{
		Timestamp: time.Now(),
		Cached:    cached,
		Seed:      &seed,
	}
	if !cached {
		metadata.QueryTimeMS = time.Since(start).Milliseconds()
	}

	respondData(w, r, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: metadata,
	})
}
