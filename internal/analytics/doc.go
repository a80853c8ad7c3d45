// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package analytics turns a synthetic dataset and a filter selection into
the series, breakdowns and KPIs the performance dashboard renders.

# Pipeline

	ResolveFilters   current/previous date ranges, records filtered by date and location
	AggregateBuckets day or Sunday-anchored week buckets, channel-aware sums
	Compute*         KPIs and deltas, time series, channel mix, leaderboards,
	                 customer and platform breakdowns, demand heatmap

ComputeDashboard runs the whole pipeline for one selection.

# Semantics

Every function is pure and total. Inputs are never modified, empty inputs
produce zero-valued or empty results, and every division guards its zero
denominator:

  - average order value is 0 without orders
  - conversion rate is 0 without sessions
  - percent change is 0 from 0 to 0, and 100 from 0 to a positive value
  - returning rate is 0 without orders
  - heatmap intensity is 0 when the grid is empty

Money is rounded to cents, conversion rate and deltas to two decimals,
shares and returning rates to whole percents.

The previous-period series is paired with the current one by position
(bucket i with bucket i), not by calendar offset.

# Thread Safety

Functions share no state, so concurrent calls never interfere. Results for
a given dataset and selection are identical on every call, which is what
makes the API layer's memoization valid.
*/
package analytics
