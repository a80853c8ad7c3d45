// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package analytics

import (
	"github.com/tomtom215/storeboard/internal/models"
)

// record builds a DailyMetrics with the given channel orders and a revenue
// of 10 per pickup, 20 per delivery and 100 per catering order. Hourly
// orders all land at noon.
func record(date, loc string, pickup, delivery, catering, sessions int) models.DailyMetrics {
	total := pickup + delivery + catering
	m := models.DailyMetrics{
		Date:       date,
		LocationID: loc,
		Sessions:   sessions,
		Orders:     models.ChannelCounts{Pickup: pickup, Delivery: delivery, Catering: catering},
		Revenue: models.ChannelAmounts{
			Pickup:   float64(pickup) * 10,
			Delivery: float64(delivery) * 20,
			Catering: float64(catering) * 100,
		},
		Customers: models.CustomerSplit{
			NewOrders:          total - total/2,
			ReturningOrders:    total / 2,
			LoyaltyRedemptions: total / 4,
		},
		Platforms: models.PlatformSplit{IOSApp: total},
	}
	m.HourlyOrders[12] = total
	return m
}

var testLocations = []models.Location{
	{ID: "loc-a", Name: "Alpha", Timezone: "UTC"},
	{ID: "loc-b", Name: "Bravo", Timezone: "UTC"},
	{ID: "loc-c", Name: "Charlie", Timezone: "UTC"},
}

var testProducts = []models.Product{
	{ID: "p1", Name: "Bowl", Category: models.CategoryBowls, BasePrice: 12},
	{ID: "p2", Name: "Salad", Category: models.CategorySalads, BasePrice: 10},
	{ID: "p3", Name: "Drink", Category: models.CategoryDrinks, BasePrice: 3},
}
