// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package analytics

import (
	"github.com/tomtom215/storeboard/internal/models"
	"github.com/tomtom215/storeboard/internal/numeric"
)

// ComputeKPIs sums records under channel.
//
// Revenue is rounded to cents. AverageOrderValue is 0 without orders and
// ConversionRate (orders per 100 sessions, two decimals) is 0 without
// sessions.
func ComputeKPIs(records []models.DailyMetrics, channel models.Channel) models.KPIData {
	var revenue float64
	var orders, sessions int
	for i := range records {
		revenue += records[i].ChannelRevenue(channel)
		orders += records[i].ChannelOrders(channel)
		sessions += records[i].Sessions
	}

	kpi := models.KPIData{
		Revenue:  numeric.Round2(revenue),
		Orders:   orders,
		Sessions: sessions,
	}
	if orders > 0 {
		kpi.AverageOrderValue = numeric.Round2(revenue / float64(orders))
	}
	if sessions > 0 {
		kpi.ConversionRate = numeric.Round2(float64(orders) / float64(sessions) * 100)
	}
	return kpi
}

// PercentChange returns the change from previous to current in percent,
// rounded to two decimals. With a zero base it returns 0 when current is
// also 0 and 100 when current is positive.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return numeric.Round2((current - previous) / previous * 100)
}

// ComputeKPIsWithChange computes KPIs for both periods and the percent
// change of each.
func ComputeKPIsWithChange(current, previous []models.DailyMetrics, channel models.Channel) models.KPIComparison {
	cur := ComputeKPIs(current, channel)
	prev := ComputeKPIs(previous, channel)

	return models.KPIComparison{
		Current:  cur,
		Previous: prev,
		Change: models.KPIChange{
			Revenue:           PercentChange(cur.Revenue, prev.Revenue),
			Orders:            PercentChange(float64(cur.Orders), float64(prev.Orders)),
			AverageOrderValue: PercentChange(cur.AverageOrderValue, prev.AverageOrderValue),
			ConversionRate:    PercentChange(cur.ConversionRate, prev.ConversionRate),
			Sessions:          PercentChange(float64(cur.Sessions), float64(prev.Sessions)),
		},
	}
}
