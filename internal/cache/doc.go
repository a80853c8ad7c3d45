// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

/*
Package cache provides thread-safe in-memory caches with TTL support.

Two implementations share the Store interface:

  - Cache: unbounded map with per-entry expiry and a background sweep.
    Used to memoize API results keyed by (seed, dataset end date, filters).
  - LRU: bounded by entry count, evicting the least recently used entry.
    Used to hold built datasets, one per seed, since each corpus is large.

# Keys

GenerateKey hashes a JSON encoding of its parameters, so two equal filter
selections map to the same key:

	key := cache.GenerateKey("dashboard", struct {
	    Seed    int64
	    EndDate string
	    Filters models.FilterState
	}{seed, ds.EndDate, filters})

# Thread Safety

Every method is safe for concurrent use.
*/
package cache
