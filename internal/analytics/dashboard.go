// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package analytics

import "github.com/tomtom215/storeboard/internal/models"

// DashboardOptions tunes ComputeDashboard.
type DashboardOptions struct {
	ShowPrevious bool
	ProductSort  models.ProductSortKey
	ProductLimit int
}

// ComputeDashboard resolves state against ds and runs every derived-metric
// computation over the result.
func ComputeDashboard(ds *models.SampleOverviewData, state models.FilterState, opts DashboardOptions) models.Dashboard {
	state = Normalize(state)
	r := ResolveFilters(ds, state)

	mix := ComputeChannelMixSeries(r.CurrentRecords, state.Interval)
	customers := ComputeCustomerBreakdown(r.CurrentRecords, state.Interval)

	return models.Dashboard{
		Filters:              state,
		CurrentRange:         r.Current,
		PreviousRange:        r.Previous,
		KPIs:                 ComputeKPIsWithChange(r.CurrentRecords, r.PreviousRecords, state.Channel),
		TimeSeries:           ComputeTimeSeries(r.CurrentRecords, r.PreviousRecords, state.Interval, state.Channel, opts.ShowPrevious),
		ChannelMix:           mix,
		ChannelTotals:        ComputeChannelTotals(mix),
		Locations:            ComputeLocationPerformance(r.CurrentRecords, ds.Locations, state.Channel),
		Products:             ComputeProductPerformance(r.CurrentSales, ds.Products, opts.ProductSort, opts.ProductLimit),
		Customers:            customers,
		OverallReturningRate: ComputeOverallReturningRate(customers),
		Platforms:            ComputePlatformBreakdown(r.CurrentRecords, state.Interval),
		Heatmap:              ComputeHeatmapData(r.CurrentRecords),
	}
}

// Normalize fills unset filter fields with their defaults: a 30 day range,
// daily buckets and all channels. It does not modify its argument.
func Normalize(state models.FilterState) models.FilterState {
	def := models.DefaultFilterState()
	if state.Preset == "" {
		state.Preset = def.Preset
	}
	if state.Interval == "" {
		state.Interval = def.Interval
	}
	if state.Channel == "" {
		state.Channel = def.Channel
	}
	if len(state.LocationIDs) > 0 {
		state.LocationIDs = append([]string(nil), state.LocationIDs...)
	}
	return state
}
