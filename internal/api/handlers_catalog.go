// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/storeboard/internal/dataset"
	"github.com/tomtom215/storeboard/internal/models"
)

// CatalogLocations returns the storefront locations.
func (h *Handler) CatalogLocations(w http.ResponseWriter, r *http.Request) {
	h.respondCatalog(w, r, func(ds *models.SampleOverviewData) interface{} {
		return ds.Locations
	})
}

// CatalogProducts returns the product catalog.
func (h *Handler) CatalogProducts(w http.ResponseWriter, r *http.Request) {
	h.respondCatalog(w, r, func(ds *models.SampleOverviewData) interface{} {
		return ds.Products
	})
}

// CatalogSummary returns the dataset window, record counts and generation
// time for the requested seed.
func (h *Handler) CatalogSummary(w http.ResponseWriter, r *http.Request) {
	h.respondCatalog(w, r, func(ds *models.SampleOverviewData) interface{} {
		return dataset.Summarize(ds)
	})
}

func (h *Handler) respondCatalog(w http.ResponseWriter, r *http.Request, project func(*models.SampleOverviewData) interface{}) {
	seed := h.datasets.DefaultSeed()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondAPIError(w, http.StatusBadRequest, parameterError("seed", "numeric", raw, "seed must be a whole number"))
			return
		}
		seed = parsed
	}

	ds, err := h.datasets.Get(r.Context(), seed)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, codeDatasetError, ErrDatasetUnavailable.Error(), err)
		return
	}

	dsSeed := ds.Seed
	respondData(w, r, &models.APIResponse{
		Status: "success",
		Data:   project(ds),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Seed:      &dsSeed,
		},
	})
}
