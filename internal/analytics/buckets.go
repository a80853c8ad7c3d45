// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package analytics

import (
	"sort"

	"github.com/tomtom215/storeboard/internal/models"
)

// Bucket is the reduction of the records falling in one day or week.
// Orders and Revenue honor the channel filter; the per-channel revenue,
// customer and platform sums do not, since they are breakdowns of their own.
type Bucket struct {
	Key                string
	Orders             int
	Revenue            float64
	Sessions           int
	ChannelRevenue     models.ChannelAmounts
	NewOrders          int
	ReturningOrders    int
	LoyaltyRedemptions int
	Platforms          models.PlatformSplit
	Records            int
}

// BucketKey returns the bucket a date belongs to: the date itself for day
// intervals, or the Sunday starting its week for week intervals.
// Unparseable dates are returned unchanged.
func BucketKey(date string, interval models.Interval) string {
	if interval != models.IntervalWeek {
		return date
	}
	t, err := parseDate(date)
	if err != nil {
		return date
	}
	return formatDate(t.AddDate(0, 0, -int(t.Weekday())))
}

// GroupByInterval groups records by BucketKey, preserving input order
// within each group.
func GroupByInterval(records []models.DailyMetrics, interval models.Interval) map[string][]models.DailyMetrics {
	groups := make(map[string][]models.DailyMetrics)
	for _, r := range records {
		key := BucketKey(r.Date, interval)
		groups[key] = append(groups[key], r)
	}
	return groups
}

// AggregateBuckets reduces records into buckets sorted ascending by key.
// yyyy-MM-dd keys sort lexicographically in chronological order.
func AggregateBuckets(records []models.DailyMetrics, interval models.Interval, channel models.Channel) []Bucket {
	groups := GroupByInterval(records, interval)

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		b := Bucket{Key: k}
		for _, r := range groups[k] {
			b.add(r, channel)
		}
		buckets = append(buckets, b)
	}
	return buckets
}

func (b *Bucket) add(r models.DailyMetrics, channel models.Channel) {
	b.Orders += r.ChannelOrders(channel)
	b.Revenue += r.ChannelRevenue(channel)
	b.Sessions += r.Sessions
	b.ChannelRevenue.Pickup += r.Revenue.Pickup
	b.ChannelRevenue.Delivery += r.Revenue.Delivery
	b.ChannelRevenue.Catering += r.Revenue.Catering
	b.NewOrders += r.Customers.NewOrders
	b.ReturningOrders += r.Customers.ReturningOrders
	b.LoyaltyRedemptions += r.Customers.LoyaltyRedemptions
	b.Platforms = b.Platforms.Add(r.Platforms)
	b.Records++
}
