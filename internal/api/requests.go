// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/tomtom215/storeboard/internal/models"
)

// Export formats accepted by the format query parameter.
const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// AnalyticsRequest represents the validated query parameters shared by the
// analytics endpoints. Numeric and boolean parameters are held as text so
// that malformed values fail validation instead of silently defaulting.
type AnalyticsRequest struct {
	Range     string   `query:"range" validate:"oneof=7d 30d 90d custom"`
	Start     string   `query:"start" validate:"dateonly"`
	End       string   `query:"end" validate:"dateonly"`
	Interval  string   `query:"interval" validate:"oneof=day week"`
	Channel   string   `query:"channel" validate:"oneof=all pickup delivery catering"`
	Locations []string `query:"locations" validate:"max=12,idlist"`
	Compare   string   `query:"compare" validate:"omitempty,boolean"`
	Seed      string   `query:"seed" validate:"omitempty,numeric"`
	Sort      string   `query:"sort" validate:"oneof=revenue units"`
	Limit     string   `query:"limit" validate:"omitempty,number"`
	Format    string   `query:"format" validate:"oneof=json csv"`
}

// analyticsDefaults fills parameters the client left out.
type analyticsDefaults struct {
	Range    string
	Interval string
	Compare  bool
	Seed     int64
	MaxLimit int
}

// analyticsQuery is an AnalyticsRequest converted to engine types.
type analyticsQuery struct {
	Filters models.FilterState
	Compare bool
	Seed    int64
	Sort    models.ProductSortKey
	Limit   int
	Format  string
}

// parseAnalyticsRequest reads and validates the analytics query string.
func parseAnalyticsRequest(r *http.Request, defaults analyticsDefaults) (*analyticsQuery, *models.APIError) {
	q := r.URL.Query()
	req := AnalyticsRequest{
		Range:     stringOr(q.Get("range"), defaults.Range),
		Start:     q.Get("start"),
		End:       q.Get("end"),
		Interval:  stringOr(q.Get("interval"), defaults.Interval),
		Channel:   stringOr(q.Get("channel"), string(models.ChannelAll)),
		Locations: parseCommaSeparated(q.Get("locations")),
		Compare:   q.Get("compare"),
		Seed:      q.Get("seed"),
		Sort:      stringOr(q.Get("sort"), string(models.SortByRevenue)),
		Limit:     q.Get("limit"),
		Format:    stringOr(q.Get("format"), formatJSON),
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		return nil, apiErr
	}

	return req.toQuery(defaults)
}

func (req *AnalyticsRequest) toQuery(defaults analyticsDefaults) (*analyticsQuery, *models.APIError) {
	query := &analyticsQuery{
		Filters: models.FilterState{
			Preset:      models.RangePreset(req.Range),
			Interval:    models.Interval(req.Interval),
			Channel:     models.Channel(req.Channel),
			LocationIDs: req.Locations,
		},
		Compare: defaults.Compare,
		Seed:    defaults.Seed,
		Sort:    models.ProductSortKey(req.Sort),
		Format:  req.Format,
	}

	if query.Filters.Preset == models.RangeCustom {
		query.Filters.CustomStart = req.Start
		query.Filters.CustomEnd = req.End
	}

	if req.Compare != "" {
		compare, err := strconv.ParseBool(req.Compare)
		if err != nil {
			return nil, parameterError("compare", "boolean", req.Compare, "compare must be true or false")
		}
		query.Compare = compare
	}

	if req.Seed != "" {
		seed, err := strconv.ParseInt(req.Seed, 10, 64)
		if err != nil {
			return nil, parameterError("seed", "numeric", req.Seed, "seed must be a whole number")
		}
		query.Seed = seed
	}

	if req.Limit != "" {
		limit, err := strconv.Atoi(req.Limit)
		if err != nil {
			return nil, parameterError("limit", "number", req.Limit, "limit must be a whole number")
		}
		if limit < 0 || (defaults.MaxLimit > 0 && limit > defaults.MaxLimit) {
			return nil, parameterError("limit", "lte", req.Limit,
				fmt.Sprintf("limit must be between 0 and %d", defaults.MaxLimit))
		}
		query.Limit = limit
	}

	return query, nil
}

func parameterError(field, tag, value, message string) *models.APIError {
	return &models.APIError{
		Code:    codeValidation,
		Message: message,
		Details: map[string]interface{}{
			"field": field,
			"tag":   tag,
			"value": value,
		},
	}
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
