// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package analytics

import (
	"github.com/tomtom215/storeboard/internal/models"
	"github.com/tomtom215/storeboard/internal/numeric"
)

// ComputeCustomerBreakdown returns per-bucket new, returning and loyalty
// order sums with the returning rate as a whole percent.
func ComputeCustomerBreakdown(records []models.DailyMetrics, interval models.Interval) []models.CustomerBreakdownPoint {
	buckets := AggregateBuckets(records, interval, models.ChannelAll)

	points := make([]models.CustomerBreakdownPoint, len(buckets))
	for i, b := range buckets {
		points[i] = models.CustomerBreakdownPoint{
			Date:               b.Key,
			NewOrders:          b.NewOrders,
			ReturningOrders:    b.ReturningOrders,
			LoyaltyRedemptions: b.LoyaltyRedemptions,
			ReturningRate:      returningRate(b.NewOrders, b.ReturningOrders),
		}
	}
	return points
}

// ComputeOverallReturningRate is the returning rate over the summed
// buckets, not the mean of their rates. It is 0 when there are no orders.
func ComputeOverallReturningRate(points []models.CustomerBreakdownPoint) int {
	var newOrders, returning int
	for _, p := range points {
		newOrders += p.NewOrders
		returning += p.ReturningOrders
	}
	return returningRate(newOrders, returning)
}

func returningRate(newOrders, returning int) int {
	return numeric.Percent(float64(returning), float64(newOrders+returning))
}

// ComputePlatformBreakdown returns per-bucket raw order counts per platform.
func ComputePlatformBreakdown(records []models.DailyMetrics, interval models.Interval) []models.PlatformBreakdownPoint {
	buckets := AggregateBuckets(records, interval, models.ChannelAll)

	points := make([]models.PlatformBreakdownPoint, len(buckets))
	for i, b := range buckets {
		points[i] = models.PlatformBreakdownPoint{Date: b.Key, PlatformSplit: b.Platforms}
	}
	return points
}

// ComputeHeatmapData folds hourly orders into a 7x24 (weekday, hour) grid.
// Cells are ordered Sunday 00:00 through Saturday 23:00. Intensity is the
// cell's share of the busiest cell, so the maximum is exactly 1 and empty
// cells are 0. Records with unparseable dates are skipped.
func ComputeHeatmapData(records []models.DailyMetrics) []models.HeatmapCell {
	var grid [7][24]int
	for i := range records {
		t, err := parseDate(records[i].Date)
		if err != nil {
			continue
		}
		day := int(t.Weekday())
		for h, n := range records[i].HourlyOrders {
			grid[day][h] += n
		}
	}

	peak := 0
	for d := range grid {
		for h := range grid[d] {
			peak = max(peak, grid[d][h])
		}
	}

	cells := make([]models.HeatmapCell, 0, 7*24)
	for d := range grid {
		for h, n := range grid[d] {
			cell := models.HeatmapCell{DayOfWeek: d, Hour: h, Orders: n}
			if peak > 0 {
				cell.Intensity = float64(n) / float64(peak)
			}
			cells = append(cells, cell)
		}
	}
	return cells
}
