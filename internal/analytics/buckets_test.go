// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package analytics

import (
	"testing"

	"github.com/tomtom215/storeboard/internal/models"
)

func TestBucketKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date     string
		interval models.Interval
		want     string
	}{
		{"2024-01-03", models.IntervalDay, "2024-01-03"},
		{"2024-01-03", models.IntervalWeek, "2023-12-31"},
		{"2023-12-31", models.IntervalWeek, "2023-12-31"},
		{"2024-01-06", models.IntervalWeek, "2023-12-31"},
		{"2024-01-07", models.IntervalWeek, "2024-01-07"},
		{"2024-03-02", models.IntervalWeek, "2024-02-25"},
		{"garbage", models.IntervalWeek, "garbage"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.date+"/"+string(tt.interval), func(t *testing.T) {
			t.Parallel()
			if got := BucketKey(tt.date, tt.interval); got != tt.want {
				t.Errorf("BucketKey(%q, %q) = %q, want %q", tt.date, tt.interval, got, tt.want)
			}
		})
	}
}

func TestAggregateBuckets_Ordering(t *testing.T) {
	t.Parallel()

	records := []models.DailyMetrics{
		record("2024-01-03", "loc-a", 1, 0, 0, 10),
		record("2024-01-01", "loc-a", 2, 0, 0, 10),
		record("2024-01-03", "loc-b", 3, 0, 0, 10),
	}

	buckets := AggregateBuckets(records, models.IntervalDay, models.ChannelAll)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].Key != "2024-01-01" || buckets[1].Key != "2024-01-03" {
		t.Errorf("keys = [%s %s], want ascending", buckets[0].Key, buckets[1].Key)
	}
	if buckets[1].Orders != 4 || buckets[1].Records != 2 {
		t.Errorf("2024-01-03 bucket = %+v", buckets[1])
	}
}

func TestAggregateBuckets_Week(t *testing.T) {
	t.Parallel()

	records := []models.DailyMetrics{
		record("2024-01-01", "loc-a", 1, 1, 0, 10), // Monday
		record("2024-01-06", "loc-a", 1, 0, 1, 10), // Saturday
		record("2024-01-07", "loc-a", 0, 2, 0, 10), // Sunday
	}

	buckets := AggregateBuckets(records, models.IntervalWeek, models.ChannelDelivery)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	first := buckets[0]
	if first.Key != "2023-12-31" {
		t.Errorf("first key = %s", first.Key)
	}
	if first.Orders != 1 || first.Revenue != 20 {
		t.Errorf("delivery orders/revenue = %d/%v, want 1/20", first.Orders, first.Revenue)
	}
	if first.ChannelRevenue.Total() != 10+20+10+100 {
		t.Errorf("channel revenue should ignore the channel filter, got %+v", first.ChannelRevenue)
	}
	if first.Sessions != 20 {
		t.Errorf("sessions = %d, want 20", first.Sessions)
	}
	if buckets[1].Key != "2024-01-07" || buckets[1].Orders != 2 {
		t.Errorf("second bucket = %+v", buckets[1])
	}
}

func TestAggregateBuckets_Empty(t *testing.T) {
	t.Parallel()

	buckets := AggregateBuckets(nil, models.IntervalDay, models.ChannelAll)
	if buckets == nil || len(buckets) != 0 {
		t.Errorf("got %v, want empty non-nil", buckets)
	}
}

func TestGroupByInterval_PreservesOrder(t *testing.T) {
	t.Parallel()

	records := []models.DailyMetrics{
		record("2024-01-02", "loc-b", 1, 0, 0, 1),
		record("2024-01-03", "loc-a", 1, 0, 0, 1),
		record("2024-01-02", "loc-a", 1, 0, 0, 1),
	}

	groups := GroupByInterval(records, models.IntervalWeek)
	week := groups["2023-12-31"]
	if len(week) != 3 {
		t.Fatalf("got %d records in week, want 3", len(week))
	}
	if week[0].LocationID != "loc-b" || week[1].Date != "2024-01-03" || week[2].LocationID != "loc-a" {
		t.Errorf("input order not preserved: %+v", week)
	}
}
