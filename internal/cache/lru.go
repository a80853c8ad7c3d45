// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package cache

import (
	"sync"
	"time"
)

// lruEntry is a node of the recency list.
type lruEntry[V any] struct {
	key       string
	value     V
	prev      *lruEntry[V]
	next      *lruEntry[V]
	expiresAt time.Time
}

// LRU is a thread-safe least-recently-used cache with TTL support.
//
// Get, Set and eviction are O(1): a map indexes nodes of a doubly-linked
// list ordered by recency. When Set pushes the cache over capacity the
// least recently used entry is dropped.
type LRU[V any] struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration

	items map[string]*lruEntry[V]

	// head.next is the most recently used, tail.prev the least.
	head *lruEntry[V]
	tail *lruEntry[V]

	stats Stats
}

// NewLRU creates an LRU cache holding at most capacity entries, each
// expiring ttl after it was last written.
func NewLRU[V any](capacity int, ttl time.Duration) *LRU[V] {
	if capacity <= 0 {
		capacity = 16
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	c := &LRU[V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*lruEntry[V], capacity),
		head:     &lruEntry[V]{},
		tail:     &lruEntry[V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get returns the value under key and marks it most recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		c.stats.Misses++
		return zero, false
	}
	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.stats.Misses++
		c.stats.Evictions++
		return zero, false
	}

	c.moveToFront(entry)
	c.stats.Hits++
	return entry.value, true
}

// Set stores value under key with the default TTL.
func (c *LRU[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key, evicting the least recently used
// entry when the cache is full.
func (c *LRU[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(ttl)

	if entry, exists := c.items[key]; exists {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &lruEntry[V]{key: key, value: value, expiresAt: expiresAt}
	c.addToFront(entry)
	c.items[key] = entry

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// Delete removes key. It is a no-op for unknown keys.
func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.items[key]; exists {
		c.removeEntry(entry)
		c.stats.Evictions++
	}
}

// Clear removes every entry.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Evictions += int64(len(c.items))
	c.items = make(map[string]*lruEntry[V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// Len returns the current number of entries.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns the stored keys from most to least recently used.
func (c *LRU[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.items))
	for e := c.head.next; e != c.tail; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// GetStats returns a snapshot of the cache statistics.
func (c *LRU[V]) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.TotalKeys = int64(len(c.items))
	return s
}

// HitRate returns the cache hit rate as a percentage
func (c *LRU[V]) HitRate() float64 {
	return c.GetStats().HitRate()
}

// Internal methods (must be called with lock held)

func (c *LRU[V]) addToFront(entry *lruEntry[V]) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *LRU[V]) moveToFront(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *LRU[V]) removeEntry(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}

func (c *LRU[V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	c.stats.Evictions++
}
