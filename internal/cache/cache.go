// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// cleanupInterval is how often the background loop sweeps expired entries.
const cleanupInterval = 5 * time.Minute

// Entry represents a cached item with expiration
type Entry[V any] struct {
	Data      V
	ExpiresAt time.Time
}

// Cache is a thread-safe in-memory cache with TTL support.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
	ttl     time.Duration
	stats   Stats

	stopOnce sync.Once
	stop     chan struct{}
}

// Stats tracks cache performance metrics
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache whose entries expire after ttl.
//
// A background goroutine sweeps expired entries every five minutes until
// Close is called. Expired entries are also dropped lazily on Get.
//
// Example:
//
//	c := cache.New[*models.Dashboard](5 * time.Minute)
//	defer c.Close()
//	c.Set(key, dashboard)
//	if d, ok := c.Get(key); ok {
//	    // use d
//	}
func New[V any](ttl time.Duration) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[string]Entry[V]),
		ttl:     ttl,
		stats:   Stats{LastCleanup: time.Now()},
		stop:    make(chan struct{}),
	}

	go c.cleanupLoop()

	return c
}

// Get returns the value stored under key if it exists and has not expired.
// An expired entry is removed and counted as both a miss and an eviction.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.record(func(s *Stats) { s.Misses++ })
		return zero, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		total := int64(len(c.entries))
		c.mu.Unlock()
		c.record(func(s *Stats) {
			s.Misses++
			s.Evictions++
			s.TotalKeys = total
		})
		return zero, false
	}

	c.record(func(s *Stats) { s.Hits++ })
	return entry.Data, true
}

// Set stores value under key with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = Entry[V]{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.record(func(s *Stats) { s.TotalKeys = total })
}

// Delete removes key. It is a no-op for unknown keys.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.record(func(s *Stats) {
		if existed {
			s.Evictions++
		}
		s.TotalKeys = total
	})
}

// Clear removes every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]Entry[V])
	c.mu.Unlock()

	c.record(func(s *Stats) {
		s.Evictions += evictions
		s.TotalKeys = 0
	})
}

// Len returns the number of stored entries, including expired entries not
// yet swept.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of the cache statistics.
func (c *Cache[V]) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache[V]) HitRate() float64 {
	return c.GetStats().HitRate()
}

// Close stops the background cleanup goroutine. It is safe to call more than once.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// HitRate returns Hits / (Hits + Misses) as a percentage, or 0 with no lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total) * 100.0
}

func (c *Cache[V]) record(fn func(*Stats)) {
	c.mu.Lock()
	fn(&c.stats)
	c.mu.Unlock()
}

// cleanupLoop periodically removes expired entries
func (c *Cache[V]) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes all expired entries
func (c *Cache[V]) cleanup() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	var evictions int64
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evictions++
		}
	}

	c.stats.Evictions += evictions
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.LastCleanup = now
}

// GenerateKey creates a cache key from a namespace and parameters.
// Parameters are serialized to JSON and hashed so equal values produce
// equal keys.
func GenerateKey(namespace string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", namespace, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", namespace, hash[:16])
}
