// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

// Package numeric holds the rounding rules shared by the dataset builder
// and the analytics engine. Halves round toward positive infinity, so
// -2.5 rounds to -2 and 2.5 rounds to 3.
package numeric

import "math"

// Round rounds x to the nearest integer, halves toward +Inf.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RoundInt is Round converted to int.
func RoundInt(x float64) int {
	return int(Round(x))
}

// Round2 rounds x to two decimal places (cents).
func Round2(x float64) float64 {
	return Round(x*100) / 100
}

// Percent returns part/whole*100 rounded to a whole number, or 0 when whole is 0.
func Percent(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return RoundInt(part / whole * 100)
}
