// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package analytics

import (
	"github.com/tomtom215/storeboard/internal/models"
	"github.com/tomtom215/storeboard/internal/numeric"
)

// ComputeTimeSeries buckets the current period chronologically.
//
// With showPrevious set, the previous period is bucketed the same way and
// its i-th bucket is attached to the i-th current bucket. Pairing is by
// position, not calendar offset, so periods with different bucket counts
// leave trailing current points unpaired and drop surplus previous buckets.
func ComputeTimeSeries(current, previous []models.DailyMetrics, interval models.Interval, channel models.Channel, showPrevious bool) []models.TimeSeriesPoint {
	cur := AggregateBuckets(current, interval, channel)

	var prev []Bucket
	if showPrevious {
		prev = AggregateBuckets(previous, interval, channel)
	}

	points := make([]models.TimeSeriesPoint, len(cur))
	for i, b := range cur {
		points[i] = models.TimeSeriesPoint{
			Date:     b.Key,
			Revenue:  numeric.Round2(b.Revenue),
			Orders:   b.Orders,
			Sessions: b.Sessions,
		}
		if i < len(prev) {
			p := prev[i]
			date := p.Key
			revenue := numeric.Round2(p.Revenue)
			orders := p.Orders
			sessions := p.Sessions
			points[i].PreviousDate = &date
			points[i].PreviousRevenue = &revenue
			points[i].PreviousOrders = &orders
			points[i].PreviousSessions = &sessions
		}
	}
	return points
}

// ComputeChannelMixSeries returns per-bucket revenue for each channel.
// It always covers all three channels regardless of any channel filter.
func ComputeChannelMixSeries(records []models.DailyMetrics, interval models.Interval) []models.ChannelMixPoint {
	buckets := AggregateBuckets(records, interval, models.ChannelAll)

	points := make([]models.ChannelMixPoint, len(buckets))
	for i, b := range buckets {
		points[i] = models.ChannelMixPoint{
			Date:     b.Key,
			Pickup:   numeric.Round2(b.ChannelRevenue.Pickup),
			Delivery: numeric.Round2(b.ChannelRevenue.Delivery),
			Catering: numeric.Round2(b.ChannelRevenue.Catering),
			Total:    numeric.Round2(b.ChannelRevenue.Total()),
		}
	}
	return points
}

// ComputeChannelTotals sums a channel-mix series. Each channel's share of
// the grand total is rounded to a whole percent on its own and the shares
// are not adjusted to add up to 100.
func ComputeChannelTotals(points []models.ChannelMixPoint) models.ChannelTotals {
	var t models.ChannelTotals
	for _, p := range points {
		t.Pickup += p.Pickup
		t.Delivery += p.Delivery
		t.Catering += p.Catering
		t.Total += p.Total
	}

	t.Pickup = numeric.Round2(t.Pickup)
	t.Delivery = numeric.Round2(t.Delivery)
	t.Catering = numeric.Round2(t.Catering)
	t.Total = numeric.Round2(t.Total)

	t.PickupShare = numeric.Percent(t.Pickup, t.Total)
	t.DeliveryShare = numeric.Percent(t.Delivery, t.Total)
	t.CateringShare = numeric.Percent(t.Catering, t.Total)
	return t
}
