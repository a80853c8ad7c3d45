// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package analytics

import (
	"testing"

	"github.com/tomtom215/storeboard/internal/models"
)

func TestComputeTimeSeries(t *testing.T) {
	t.Parallel()

	current := []models.DailyMetrics{
		record("2024-01-09", "loc-a", 1, 0, 0, 10),
		record("2024-01-08", "loc-a", 2, 0, 0, 10),
		record("2024-01-10", "loc-a", 3, 0, 0, 10),
	}
	previous := []models.DailyMetrics{
		record("2024-01-05", "loc-a", 0, 1, 0, 5),
		record("2024-01-06", "loc-a", 0, 2, 0, 5),
	}

	t.Run("without previous", func(t *testing.T) {
		t.Parallel()
		points := ComputeTimeSeries(current, previous, models.IntervalDay, models.ChannelAll, false)
		if len(points) != 3 {
			t.Fatalf("got %d points, want 3", len(points))
		}
		for _, p := range points {
			if p.PreviousDate != nil || p.PreviousRevenue != nil || p.PreviousOrders != nil || p.PreviousSessions != nil {
				t.Errorf("%s has previous values", p.Date)
			}
		}
		if points[0].Date != "2024-01-08" || points[0].Orders != 2 || points[0].Revenue != 20 {
			t.Errorf("first point = %+v", points[0])
		}
	})

	t.Run("paired by position", func(t *testing.T) {
		t.Parallel()
		points := ComputeTimeSeries(current, previous, models.IntervalDay, models.ChannelAll, true)
		if len(points) != 3 {
			t.Fatalf("got %d points, want 3", len(points))
		}
		if points[0].PreviousDate == nil || *points[0].PreviousDate != "2024-01-05" {
			t.Errorf("point 0 previous date = %v", points[0].PreviousDate)
		}
		if *points[1].PreviousOrders != 2 || *points[1].PreviousRevenue != 40 || *points[1].PreviousSessions != 5 {
			t.Errorf("point 1 previous = %d/%v/%d", *points[1].PreviousOrders, *points[1].PreviousRevenue, *points[1].PreviousSessions)
		}
		if points[2].PreviousDate != nil {
			t.Errorf("point 2 should be unpaired, got %s", *points[2].PreviousDate)
		}
	})

	t.Run("surplus previous buckets dropped", func(t *testing.T) {
		t.Parallel()
		points := ComputeTimeSeries(current[:1], previous, models.IntervalDay, models.ChannelAll, true)
		if len(points) != 1 {
			t.Fatalf("got %d points, want 1", len(points))
		}
		if *points[0].PreviousDate != "2024-01-05" {
			t.Errorf("previous date = %s", *points[0].PreviousDate)
		}
	})

	t.Run("channel filter", func(t *testing.T) {
		t.Parallel()
		points := ComputeTimeSeries(current, previous, models.IntervalDay, models.ChannelDelivery, true)
		for _, p := range points {
			if p.Orders != 0 || p.Revenue != 0 {
				t.Errorf("%s has delivery orders %d", p.Date, p.Orders)
			}
		}
		if *points[0].PreviousOrders != 1 {
			t.Errorf("previous delivery orders = %d, want 1", *points[0].PreviousOrders)
		}
	})
}

func TestComputeTimeSeries_Empty(t *testing.T) {
	t.Parallel()

	points := ComputeTimeSeries(nil, nil, models.IntervalWeek, models.ChannelAll, true)
	if points == nil || len(points) != 0 {
		t.Errorf("got %v, want empty non-nil", points)
	}
}

func TestComputeChannelMixSeries(t *testing.T) {
	t.Parallel()

	records := []models.DailyMetrics{
		record("2024-01-02", "loc-a", 1, 1, 1, 10),
		record("2024-01-01", "loc-b", 2, 0, 0, 10),
		record("2024-01-02", "loc-b", 0, 0, 1, 10),
	}

	points := ComputeChannelMixSeries(records, models.IntervalDay)
	want := []models.ChannelMixPoint{
		{Date: "2024-01-01", Pickup: 20, Total: 20},
		{Date: "2024-01-02", Pickup: 10, Delivery: 20, Catering: 200, Total: 230},
	}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, points[i], want[i])
		}
	}
}

func TestComputeChannelTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []models.ChannelMixPoint
		want   models.ChannelTotals
	}{
		{
			name:   "empty",
			points: nil,
			want:   models.ChannelTotals{},
		},
		{
			name: "even thirds do not add to 100",
			points: []models.ChannelMixPoint{
				{Date: "2024-01-01", Pickup: 10, Delivery: 10, Catering: 10, Total: 30},
			},
			want: models.ChannelTotals{
				Pickup: 10, Delivery: 10, Catering: 10, Total: 30,
				PickupShare: 33, DeliveryShare: 33, CateringShare: 33,
			},
		},
		{
			name: "summed across buckets",
			points: []models.ChannelMixPoint{
				{Date: "2024-01-01", Pickup: 50, Delivery: 25, Total: 75},
				{Date: "2024-01-02", Catering: 25, Total: 25},
			},
			want: models.ChannelTotals{
				Pickup: 50, Delivery: 25, Catering: 25, Total: 100,
				PickupShare: 50, DeliveryShare: 25, CateringShare: 25,
			},
		},
		{
			name: "halves round up",
			points: []models.ChannelMixPoint{
				{Date: "2024-01-01", Pickup: 1, Delivery: 1, Catering: 198, Total: 200},
			},
			want: models.ChannelTotals{
				Pickup: 1, Delivery: 1, Catering: 198, Total: 200,
				PickupShare: 1, DeliveryShare: 1, CateringShare: 99,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ComputeChannelTotals(tt.points); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
