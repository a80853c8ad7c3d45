// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"net/http"

	"github.com/tomtom215/storeboard/internal/analytics"
	"github.com/tomtom215/storeboard/internal/models"
)

// AnalyticsOverview returns every derived structure for the filter in one
// response, the payload a dashboard page renders from.
func (h *Handler) AnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsOverview",
		func(ds *models.SampleOverviewData, state models.FilterState, q *analyticsQuery) interface{} {
			return analytics.ComputeDashboard(ds, state, analytics.DashboardOptions{
				ShowPrevious: q.Compare,
				ProductSort:  q.Sort,
				ProductLimit: q.Limit,
			})
		})
}

// AnalyticsKPIs returns current and previous period KPIs with percent change.
func (h *Handler) AnalyticsKPIs(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsKPIs",
		func(ds *models.SampleOverviewData, state models.FilterState, _ *analyticsQuery) interface{} {
			resolved := analytics.ResolveFilters(ds, state)
			return models.KPIResult{
				CurrentRange:  resolved.Current,
				PreviousRange: resolved.Previous,
				KPIs:          analytics.ComputeKPIsWithChange(resolved.CurrentRecords, resolved.PreviousRecords, state.Channel),
			}
		})
}

// AnalyticsTimeSeries returns revenue, orders and sessions per bucket,
// with previous-period values when compare=true.
func (h *Handler) AnalyticsTimeSeries(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsTimeSeries",
		func(ds *models.SampleOverviewData, state models.FilterState, q *analyticsQuery) interface{} {
			resolved := analytics.ResolveFilters(ds, state)
			return analytics.ComputeTimeSeries(resolved.CurrentRecords, resolved.PreviousRecords,
				state.Interval, state.Channel, q.Compare)
		})
}

// AnalyticsChannelMix returns revenue per channel per bucket and the
// period's channel shares. The channel filter does not apply.
func (h *Handler) AnalyticsChannelMix(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsChannelMix",
		func(ds *models.SampleOverviewData, state models.FilterState, _ *analyticsQuery) interface{} {
			resolved := analytics.ResolveFilters(ds, state)
			series := analytics.ComputeChannelMixSeries(resolved.CurrentRecords, state.Interval)
			return models.ChannelMixResult{
				Series: series,
				Totals: analytics.ComputeChannelTotals(series),
			}
		})
}

// AnalyticsLocations returns the location leaderboard.
func (h *Handler) AnalyticsLocations(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).ExecuteExportable(w, r, "AnalyticsLocations",
		func(ds *models.SampleOverviewData, state models.FilterState, _ *analyticsQuery) interface{} {
			resolved := analytics.ResolveFilters(ds, state)
			return analytics.ComputeLocationPerformance(resolved.CurrentRecords, ds.Locations, state.Channel)
		},
		"locations", writeLocationsCSV)
}

// AnalyticsProducts returns the product ranking, sorted by sort and capped
// by limit.
func (h *Handler) AnalyticsProducts(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).ExecuteExportable(w, r, "AnalyticsProducts",
		func(ds *models.SampleOverviewData, state models.FilterState, q *analyticsQuery) interface{} {
			resolved := analytics.ResolveFilters(ds, state)
			return analytics.ComputeProductPerformance(resolved.CurrentSales, ds.Products, q.Sort, q.Limit)
		},
		"products", writeProductsCSV)
}

// AnalyticsCustomers returns new versus returning orders per bucket.
func (h *Handler) AnalyticsCustomers(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsCustomers",
		func(ds *models.SampleOverviewData, state models.FilterState, _ *analyticsQuery) interface{} {
			resolved := analytics.ResolveFilters(ds, state)
			series := analytics.ComputeCustomerBreakdown(resolved.CurrentRecords, state.Interval)
			return models.CustomerBreakdownResult{
				Series:               series,
				OverallReturningRate: analytics.ComputeOverallReturningRate(series),
			}
		})
}

// AnalyticsPlatforms returns orders per ordering platform per bucket.
func (h *Handler) AnalyticsPlatforms(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsPlatforms",
		func(ds *models.SampleOverviewData, state models.FilterState, _ *analyticsQuery) interface{} {
			resolved := analytics.ResolveFilters(ds, state)
			return analytics.ComputePlatformBreakdown(resolved.CurrentRecords, state.Interval)
		})
}

// AnalyticsHeatmap returns the 7x24 day-of-week by hour order grid.
func (h *Handler) AnalyticsHeatmap(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsHeatmap",
		func(ds *models.SampleOverviewData, state models.FilterState, _ *analyticsQuery) interface{} {
			resolved := analytics.ResolveFilters(ds, state)
			return analytics.ComputeHeatmapData(resolved.CurrentRecords)
		})
}
