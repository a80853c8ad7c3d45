// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package analytics

import (
	"time"

	"github.com/tomtom215/storeboard/internal/models"
)

// defaultPresetDays applies when a preset is unknown or a custom range
// cannot be parsed.
const defaultPresetDays = 30

// Resolved is a filter selection applied to a dataset.
//
// Records are filtered by date and location only. The channel filter is
// applied later, during aggregation, because it selects which channels
// are summed rather than which records are kept.
type Resolved struct {
	Current         models.DateRange
	Previous        models.DateRange
	CurrentRecords  []models.DailyMetrics
	PreviousRecords []models.DailyMetrics
	CurrentSales    []models.ProductSale
}

// ResolveDateRanges returns the current period for state and the previous
// period of identical length ending the day before the current one starts.
//
// Presets end on today. A custom range whose start is after its end is
// swapped; a missing custom bound defaults to today.
func ResolveDateRanges(state models.FilterState, today string) (current, previous models.DateRange) {
	end, err := parseDate(today)
	if err != nil {
		return models.DateRange{}, models.DateRange{}
	}

	start := end.AddDate(0, 0, -(defaultPresetDays - 1))
	switch {
	case state.Preset == models.RangeCustom:
		if s, e, ok := customBounds(state, end); ok {
			start, end = s, e
		}
	case state.Preset.Days() > 0:
		start = end.AddDate(0, 0, -(state.Preset.Days() - 1))
	}

	days := models.InclusiveDays(start, end)
	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(days - 1))

	return models.DateRange{Start: formatDate(start), End: formatDate(end)},
		models.DateRange{Start: formatDate(prevStart), End: formatDate(prevEnd)}
}

func customBounds(state models.FilterState, today time.Time) (start, end time.Time, ok bool) {
	start, end = today, today
	var err error
	if state.CustomStart != "" {
		if start, err = parseDate(state.CustomStart); err != nil {
			return time.Time{}, time.Time{}, false
		}
	}
	if state.CustomEnd != "" {
		if end, err = parseDate(state.CustomEnd); err != nil {
			return time.Time{}, time.Time{}, false
		}
	}
	if start.After(end) {
		start, end = end, start
	}
	return start, end, true
}

// ResolveFilters applies state to ds. "Today" is the dataset's end date.
func ResolveFilters(ds *models.SampleOverviewData, state models.FilterState) Resolved {
	current, previous := ResolveDateRanges(state, ds.EndDate)
	locations := locationSet(state.LocationIDs)

	return Resolved{
		Current:         current,
		Previous:        previous,
		CurrentRecords:  filterMetrics(ds.DailyMetrics, current, locations),
		PreviousRecords: filterMetrics(ds.DailyMetrics, previous, locations),
		CurrentSales:    filterSales(ds.ProductSales, current, locations),
	}
}

// locationSet returns nil for an empty selection, meaning every location.
func locationSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func matchLocation(set map[string]struct{}, id string) bool {
	if set == nil {
		return true
	}
	_, ok := set[id]
	return ok
}

func filterMetrics(records []models.DailyMetrics, r models.DateRange, locations map[string]struct{}) []models.DailyMetrics {
	out := make([]models.DailyMetrics, 0)
	for i := range records {
		if r.Contains(records[i].Date) && matchLocation(locations, records[i].LocationID) {
			out = append(out, records[i])
		}
	}
	return out
}

func filterSales(sales []models.ProductSale, r models.DateRange, locations map[string]struct{}) []models.ProductSale {
	out := make([]models.ProductSale, 0)
	for i := range sales {
		if r.Contains(sales[i].Date) && matchLocation(locations, sales[i].LocationID) {
			out = append(out, sales[i])
		}
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(models.DateFormat, s)
}

func formatDate(t time.Time) string {
	return t.Format(models.DateFormat)
}
