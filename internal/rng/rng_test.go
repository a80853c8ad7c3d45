// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package rng

import (
	"sort"
	"testing"
)

func TestNext_FirstValues(t *testing.T) {
	t.Parallel()

	g := New(42)
	// (42*1103515245 + 12345) mod 2^31 = 1250496027
	want := 1250496027.0 / (1 << 31)
	if got := g.Next(); got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
}

func TestNext_Range(t *testing.T) {
	t.Parallel()

	g := New(7)
	for i := 0; i < 10000; i++ {
		v := g.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() = %v, outside [0,1)", v)
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	t.Parallel()

	a, b := New(1234), New(1234)
	for i := 0; i < 500; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d diverged: %v != %v", i, x, y)
		}
	}
}

func TestNegativeSeedWraps(t *testing.T) {
	t.Parallel()

	a := New(-1)
	b := New((1 << 31) - 1)
	if a.Next() != b.Next() {
		t.Error("expected -1 and 2^31-1 to produce the same sequence")
	}
}

func TestNormalizeSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seed int64
		want int64
	}{
		{0, 0},
		{42, 42},
		{1<<31 + 42, 42},
		{-1, 1<<31 - 1},
		{-(1 << 31), 0},
		{1<<62 + 7, 7},
	}

	for _, tt := range tests {
		if got := NormalizeSeed(tt.seed); got != tt.want {
			t.Errorf("NormalizeSeed(%d) = %d, want %d", tt.seed, got, tt.want)
		}
	}
}

func TestInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max int
	}{
		{"small range", 1, 6},
		{"single value", 5, 5},
		{"negative", -10, -2},
		{"reversed bounds", 9, 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := New(99)
			lo, hi := tt.min, tt.max
			if hi < lo {
				lo, hi = hi, lo
			}
			seen := make(map[int]bool)
			for i := 0; i < 2000; i++ {
				v := g.Int(tt.min, tt.max)
				if v < lo || v > hi {
					t.Fatalf("Int(%d,%d) = %d out of range", tt.min, tt.max, v)
				}
				seen[v] = true
			}
			if len(seen) != hi-lo+1 {
				t.Errorf("expected all %d values to appear, saw %d", hi-lo+1, len(seen))
			}
		})
	}
}

func TestFloat(t *testing.T) {
	t.Parallel()

	g := New(3)
	for i := 0; i < 2000; i++ {
		v := g.Float(0.7, 1.3)
		if v < 0.7 || v >= 1.3 {
			t.Fatalf("Float(0.7,1.3) = %v out of range", v)
		}
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	g := New(11)
	if got := Pick(g, []string{}); got != "" {
		t.Errorf("Pick(empty) = %q, want zero value", got)
	}

	items := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		v := Pick(g, items)
		if v != "a" && v != "b" && v != "c" {
			t.Fatalf("Pick returned %q", v)
		}
	}
}

func TestPick_EmptyConsumesNoDraw(t *testing.T) {
	t.Parallel()

	a, b := New(5), New(5)
	Pick(a, []int(nil))
	if a.Next() != b.Next() {
		t.Error("Pick on empty input should not advance the generator")
	}
}

func TestShuffle(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	original := append([]int(nil), input...)

	out := Shuffle(New(42), input)

	for i := range input {
		if input[i] != original[i] {
			t.Fatal("Shuffle modified its input")
		}
	}

	sorted := append([]int(nil), out...)
	sort.Ints(sorted)
	for i := range sorted {
		if sorted[i] != original[i] {
			t.Fatalf("Shuffle output is not a permutation: %v", out)
		}
	}

	again := Shuffle(New(42), input)
	for i := range out {
		if out[i] != again[i] {
			t.Fatalf("Shuffle not reproducible: %v vs %v", out, again)
		}
	}
}

func TestShuffle_ConsumesLenMinusOneDraws(t *testing.T) {
	t.Parallel()

	a, b := New(8), New(8)
	Shuffle(a, []int{1, 2, 3, 4})
	for i := 0; i < 3; i++ {
		b.Next()
	}
	if a.Next() != b.Next() {
		t.Error("expected Shuffle of 4 items to consume exactly 3 draws")
	}
}

func BenchmarkNext(b *testing.B) {
	g := New(42)
	for i := 0; i < b.N; i++ {
		g.Next()
	}
}
