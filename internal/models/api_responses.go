// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package models

import (
	"time"
)

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Status is "success" or "error". On error the Error field carries the
// details and Data is null.
//
// Example:
//
//	{
//	  "status": "success",
//	  "data": {"revenue": 48211.35, "orders": 2931},
//	  "metadata": {"timestamp": "2026-10-18T12:00:00Z", "query_time_ms": 3}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata. QueryTimeMS is 0 for cached results.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	Seed        *int64    `json:"seed,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
//
// Common error codes:
//   - VALIDATION_ERROR: invalid query parameters
//   - NOT_FOUND: unknown route or resource
//   - DATASET_UNAVAILABLE: the dataset has not been built yet
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
