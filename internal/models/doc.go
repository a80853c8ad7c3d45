// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package models defines the data structures shared across Storeboard.

It holds the synthetic commerce corpus (catalog entries, daily per-location
metrics, product sales), the filter selection a dashboard submits, the
derived shapes the analytics engine produces, and the HTTP response
envelope used by every API endpoint.

Model Categories:

1. Catalog:
  - Location: a storefront with display name and IANA timezone
  - Product: a menu item with category and base price

2. Corpus:
  - DailyMetrics: one (date, location) record with channel, customer,
    hourly and platform splits
  - ProductSale: units and revenue for one (date, location, product)
  - SampleOverviewData: the full read-only corpus for one seed

3. Filters:
  - FilterState: range preset or custom range, interval, channel and
    location subset
  - DateRange: inclusive yyyy-MM-dd bounds

4. Derived:
  - KPIData, KPIComparison, TimeSeriesPoint, ChannelMixPoint,
    ChannelTotals, LocationPerformance, ProductPerformance,
    CustomerBreakdownPoint, PlatformBreakdownPoint, HeatmapCell

5. API:
  - APIResponse, Metadata, APIError

Dates are carried as yyyy-MM-dd strings throughout. That format sorts
lexicographically in chronological order, which the bucketing code relies on.

Thread Safety:

All types are plain values. A SampleOverviewData is built once and then
only read, so it can be shared between goroutines without locking.
*/
package models
