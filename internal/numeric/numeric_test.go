// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package numeric

import "testing"

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{2.4, 2},
		{2.5, 3},
		{-2.5, -2},
		{-2.6, -3},
		{1234.4999, 1234},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{12.344, 12.34},
		{12.346, 12.35},
		{-50, -50},
		{99.999, 100},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		part, whole float64
		want        int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 1, 100},
	}
	for _, tt := range tests {
		if got := Percent(tt.part, tt.whole); got != tt.want {
			t.Errorf("Percent(%v, %v) = %d, want %d", tt.part, tt.whole, got, tt.want)
		}
	}
}
