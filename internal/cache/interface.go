// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package cache

import "time"

// Store is the behavior shared by Cache and LRU, so callers can choose an
// eviction strategy from configuration.
type Store[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	SetWithTTL(key string, value V, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
	GetStats() Stats
	HitRate() float64
}

// Type names a Store implementation.
type Type string

const (
	// TypeTTL is an unbounded cache whose entries expire after a TTL.
	TypeTTL Type = "ttl"

	// TypeLRU is a bounded cache that evicts the least recently used entry.
	TypeLRU Type = "lru"
)

// Config selects and sizes a Store.
type Config struct {
	Type     Type
	TTL      time.Duration
	Capacity int // LRU only
}

// NewStore creates a Store from cfg. Unknown types fall back to TypeTTL.
//
// Example:
//
//	datasets := cache.NewStore[*models.SampleOverviewData](cache.Config{
//	    Type: cache.TypeLRU, TTL: time.Hour, Capacity: 8,
//	})
func NewStore[V any](cfg Config) Store[V] {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}

	switch cfg.Type {
	case TypeLRU:
		return NewLRU[V](cfg.Capacity, cfg.TTL)
	default:
		return New[V](cfg.TTL)
	}
}

// Verify interface implementations at compile time
var (
	_ Store[int] = (*Cache[int])(nil)
	_ Store[int] = (*LRU[int])(nil)
)
