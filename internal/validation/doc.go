// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is created lazily and shared. Field names in
// error messages come from `query` or `json` struct tags, so a failure on
//
//	type AnalyticsRequest struct {
//	    Interval string `query:"interval" validate:"omitempty,oneof=day week"`
//	}
//
// reads "interval must be one of: day week".
//
// Custom tags:
//   - dateonly: empty or a yyyy-MM-dd calendar date
//   - idlist: a slice of lowercase identifiers such as "loc-01"
//
// Handlers convert failures with ToAPIError and return them as
// VALIDATION_ERROR responses:
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
