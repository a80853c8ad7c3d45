// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

// Package rng provides the seeded linear-congruential generator that every
// synthetic dataset is derived from.
//
// Two generators constructed with the same seed and driven with the same
// sequence of calls produce identical output. Callers that depend on
// reproducibility must therefore keep the order of draws fixed.
package rng

const (
	multiplier = 1103515245
	increment  = 12345
	modulus    = 1 << 31
)

// Generator is a deterministic pseudo-random source.
// It is not safe for concurrent use.
type Generator struct {
	state uint64
}

// NormalizeSeed maps seed into [0, 2^31), the state space of the
// recurrence. Seeds with the same normal form drive identical sequences.
func NormalizeSeed(seed int64) int64 {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	return s
}

// New creates a generator seeded with NormalizeSeed(seed).
func New(seed int64) *Generator {
	return &Generator{state: uint64(NormalizeSeed(seed))}
}

// Next advances the recurrence and returns a value in [0, 1).
func (g *Generator) Next() float64 {
	g.state = (g.state*multiplier + increment) % modulus
	return float64(g.state) / modulus
}

// Int returns a uniform integer in the inclusive range [min, max].
func (g *Generator) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(g.Next()*float64(max-min+1))
}

// Float returns a uniform real in [min, max).
func (g *Generator) Float(min, max float64) float64 {
	return min + g.Next()*(max-min)
}

// Pick returns one element of items. The zero value is returned, without
// consuming a draw, when items is empty.
func Pick[T any](g *Generator, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[int(g.Next()*float64(len(items)))]
}

// Shuffle returns a Fisher-Yates shuffled copy of items using the
// generator's own draws. The input slice is not modified.
func Shuffle[T any](g *Generator, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := int(g.Next() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
