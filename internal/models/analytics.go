// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package models

// KPIData is the headline numbers for one period.
type KPIData struct {
	Revenue           float64 `json:"revenue"`
	Orders            int     `json:"orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	ConversionRate    float64 `json:"conversion_rate"`
	Sessions          int     `json:"sessions"`
}

// KPIChange is the percent change of each KPI from the previous period.
type KPIChange struct {
	Revenue           float64 `json:"revenue"`
	Orders            float64 `json:"orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	ConversionRate    float64 `json:"conversion_rate"`
	Sessions          float64 `json:"sessions"`
}

// KPIComparison pairs current and previous KPIs with their deltas.
type KPIComparison struct {
	Current  KPIData   `json:"current"`
	Previous KPIData   `json:"previous"`
	Change   KPIChange `json:"change"`
}

// TimeSeriesPoint is one bucket of the revenue/orders series.
//
// The Previous* fields are set only when the previous period is shown.
// They hold the previous-period bucket at the same ordinal position, not
// the same calendar offset.
type TimeSeriesPoint struct {
	Date             string   `json:"date"`
	Revenue          float64  `json:"revenue"`
	Orders           int      `json:"orders"`
	Sessions         int      `json:"sessions"`
	PreviousDate     *string  `json:"previous_date,omitempty"`
	PreviousRevenue  *float64 `json:"previous_revenue,omitempty"`
	PreviousOrders   *int     `json:"previous_orders,omitempty"`
	PreviousSessions *int     `json:"previous_sessions,omitempty"`
}

// ChannelMixPoint is the per-channel revenue of one bucket.
type ChannelMixPoint struct {
	Date     string  `json:"date"`
	Pickup   float64 `json:"pickup"`
	Delivery float64 `json:"delivery"`
	Catering float64 `json:"catering"`
	Total    float64 `json:"total"`
}

// ChannelTotals sums a channel-mix series. Each share is a whole percent
// computed independently, so the three may not add up to exactly 100.
type ChannelTotals struct {
	Pickup        float64 `json:"pickup"`
	Delivery      float64 `json:"delivery"`
	Catering      float64 `json:"catering"`
	Total         float64 `json:"total"`
	PickupShare   int     `json:"pickup_share"`
	DeliveryShare int     `json:"delivery_share"`
	CateringShare int     `json:"catering_share"`
}

// LocationPerformance is one row of the location leaderboard.
type LocationPerformance struct {
	LocationID        string  `json:"location_id"`
	Name              string  `json:"name"`
	Revenue           float64 `json:"revenue"`
	Orders            int     `json:"orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// ProductSortKey selects the product ranking order.
type ProductSortKey string

const (
	SortByRevenue ProductSortKey = "revenue"
	SortByUnits   ProductSortKey = "units"
)

// ProductPerformance is one row of the product ranking.
type ProductPerformance struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  ProductCategory `json:"category"`
	Revenue   float64         `json:"revenue"`
	Units     int             `json:"units"`
}

// CustomerBreakdownPoint is the new/returning split of one bucket.
// ReturningRate is a whole percent.
type CustomerBreakdownPoint struct {
	Date               string `json:"date"`
	NewOrders          int    `json:"new_orders"`
	ReturningOrders    int    `json:"returning_orders"`
	LoyaltyRedemptions int    `json:"loyalty_redemptions"`
	ReturningRate      int    `json:"returning_rate"`
}

// PlatformBreakdownPoint is the raw per-platform order count of one bucket.
type PlatformBreakdownPoint struct {
	Date string `json:"date"`
	PlatformSplit
}

// HeatmapCell is one (day of week, hour) cell of the demand grid.
// DayOfWeek is 0 for Sunday. Intensity is in [0, 1].
type HeatmapCell struct {
	DayOfWeek int     `json:"day_of_week"`
	Hour      int     `json:"hour"`
	Orders    int     `json:"orders"`
	Intensity float64 `json:"intensity"`
}

// Dashboard is every derived structure for one filter selection.
type Dashboard struct {
	Filters              FilterState              `json:"filters"`
	CurrentRange         DateRange                `json:"current_range"`
	PreviousRange        DateRange                `json:"previous_range"`
	KPIs                 KPIComparison            `json:"kpis"`
	TimeSeries           []TimeSeriesPoint        `json:"time_series"`
	ChannelMix           []ChannelMixPoint        `json:"channel_mix"`
	ChannelTotals        ChannelTotals            `json:"channel_totals"`
	Locations            []LocationPerformance    `json:"locations"`
	Products             []ProductPerformance     `json:"products"`
	Customers            []CustomerBreakdownPoint `json:"customers"`
	OverallReturningRate int                      `json:"overall_returning_rate"`
	Platforms            []PlatformBreakdownPoint `json:"platforms"`
	Heatmap              []HeatmapCell            `json:"heatmap"`
}

// ChannelMixResult is the channel mix series with its period totals.
type ChannelMixResult struct {
	Series []ChannelMixPoint `json:"series"`
	Totals ChannelTotals     `json:"totals"`
}

// CustomerBreakdownResult is the customer series with the returning rate
// over the whole period.
type CustomerBreakdownResult struct {
	Series               []CustomerBreakdownPoint `json:"series"`
	OverallReturningRate int                      `json:"overall_returning_rate"`
}

// KPIResult pairs the KPI comparison with the ranges it covers.
type KPIResult struct {
	CurrentRange  DateRange     `json:"current_range"`
	PreviousRange DateRange     `json:"previous_range"`
	KPIs          KPIComparison `json:"kpis"`
}
