// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import "errors"

// Common API errors
var (
	// ErrDatasetUnavailable indicates the dataset provider could not supply a corpus
	ErrDatasetUnavailable = errors.New("dataset unavailable")

	// ErrExportNotSupported indicates format=csv on an endpoint without a CSV form
	ErrExportNotSupported = errors.New("csv export not supported for this endpoint")
)

// Error codes used in API error envelopes.
const (
	codeValidation        = "VALIDATION_ERROR"
	codeDatasetError      = "DATASET_ERROR"
	codeExportError       = "EXPORT_ERROR"
	codeNotFound          = "NOT_FOUND"
	codeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	codeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)
