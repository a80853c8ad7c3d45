// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package analytics

import (
	"sort"

	"github.com/tomtom215/storeboard/internal/models"
	"github.com/tomtom215/storeboard/internal/numeric"
)

// ComputeLocationPerformance returns one row per catalog location, including
// locations without matching records, sorted by revenue descending. Ties
// keep catalog order.
func ComputeLocationPerformance(records []models.DailyMetrics, locations []models.Location, channel models.Channel) []models.LocationPerformance {
	type totals struct {
		revenue float64
		orders  int
	}
	byLocation := make(map[string]*totals, len(locations))
	for i := range records {
		t, ok := byLocation[records[i].LocationID]
		if !ok {
			t = &totals{}
			byLocation[records[i].LocationID] = t
		}
		t.revenue += records[i].ChannelRevenue(channel)
		t.orders += records[i].ChannelOrders(channel)
	}

	rows := make([]models.LocationPerformance, len(locations))
	for i, loc := range locations {
		row := models.LocationPerformance{LocationID: loc.ID, Name: loc.Name}
		if t, ok := byLocation[loc.ID]; ok {
			row.Revenue = numeric.Round2(t.revenue)
			row.Orders = t.orders
			if t.orders > 0 {
				row.AverageOrderValue = numeric.Round2(t.revenue / float64(t.orders))
			}
		}
		rows[i] = row
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})
	return rows
}

// ComputeProductPerformance sums sales per product and ranks products by
// sortBy descending, ties broken by product ID. Only products with sales
// appear, and sales for products missing from the catalog are ignored.
// A positive limit truncates the ranking.
func ComputeProductPerformance(sales []models.ProductSale, products []models.Product, sortBy models.ProductSortKey, limit int) []models.ProductPerformance {
	catalog := make(map[string]models.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	byProduct := make(map[string]*models.ProductPerformance)
	for i := range sales {
		p, ok := catalog[sales[i].ProductID]
		if !ok {
			continue
		}
		row, ok := byProduct[p.ID]
		if !ok {
			row = &models.ProductPerformance{ProductID: p.ID, Name: p.Name, Category: p.Category}
			byProduct[p.ID] = row
		}
		row.Revenue += sales[i].Revenue
		row.Units += sales[i].Units
	}

	rows := make([]models.ProductPerformance, 0, len(byProduct))
	for _, row := range byProduct {
		row.Revenue = numeric.Round2(row.Revenue)
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if sortBy == models.SortByUnits {
			if a.Units != b.Units {
				return a.Units > b.Units
			}
		} else if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.ProductID < b.ProductID
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
