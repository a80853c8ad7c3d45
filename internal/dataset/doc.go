// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package dataset synthesizes the multi-location, multi-channel commerce
corpus the dashboard analyzes.

The catalog is fixed: 12 locations and 25 products in five categories.
Build derives everything else from a seed through rng.Generator, covering
a trailing window (120 days by default) that ends at local midnight today.

# Reproducibility

For a given seed and end date the output is identical across runs. Draws
are made in a fixed order:

 1. One performance factor per location, catalog order.
 2. For each day, oldest first, and each location, catalog order:
    the metrics draws (sessions, conversion, channel shares, AOVs,
    returning rate, loyalty fraction, 24 hourly jitters, four platform
    shares), then the product-sale draws (row count, catalog shuffle,
    items target, then units and price variation per row).

# Invariants

Every DailyMetrics record satisfies:
  - pickup + delivery + catering orders equal the all-channel total
  - the 24 hourly counts sum to the same total
  - the five platform counts sum to the same total
  - every numeric field is non-negative

# Provider

Provider caches built datasets in a bounded LRU keyed by seed and end
date, and reports build timings to Prometheus.
*/
package dataset
