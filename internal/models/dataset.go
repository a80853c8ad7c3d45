// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package models

import "time"

// Channel is a fulfillment mode. ChannelAll selects the sum of the three.
type Channel string

const (
	ChannelAll      Channel = "all"
	ChannelPickup   Channel = "pickup"
	ChannelDelivery Channel = "delivery"
	ChannelCatering Channel = "catering"
)

// Valid reports whether c is a known channel filter value.
func (c Channel) Valid() bool {
	switch c {
	case ChannelAll, ChannelPickup, ChannelDelivery, ChannelCatering:
		return true
	}
	return false
}

// ChannelCounts holds an order count per channel.
type ChannelCounts struct {
	Pickup   int `json:"pickup"`
	Delivery int `json:"delivery"`
	Catering int `json:"catering"`
}

// Total returns the all-channel order count.
func (c ChannelCounts) Total() int {
	return c.Pickup + c.Delivery + c.Catering
}

// ChannelAmounts holds a revenue amount per channel.
type ChannelAmounts struct {
	Pickup   float64 `json:"pickup"`
	Delivery float64 `json:"delivery"`
	Catering float64 `json:"catering"`
}

// Total returns the all-channel revenue.
func (a ChannelAmounts) Total() float64 {
	return a.Pickup + a.Delivery + a.Catering
}

// CustomerSplit divides orders into new and returning customers.
// LoyaltyRedemptions is a subset of ReturningOrders.
type CustomerSplit struct {
	NewOrders          int `json:"new_orders"`
	ReturningOrders    int `json:"returning_orders"`
	LoyaltyRedemptions int `json:"loyalty_redemptions"`
}

// PlatformSplit divides orders across the five ordering platforms.
type PlatformSplit struct {
	IOSApp     int `json:"ios_app"`
	AndroidApp int `json:"android_app"`
	DesktopWeb int `json:"desktop_web"`
	MobileWeb  int `json:"mobile_web"`
	Kiosk      int `json:"kiosk"`
}

// Total returns the order count across all platforms.
func (p PlatformSplit) Total() int {
	return p.IOSApp + p.AndroidApp + p.DesktopWeb + p.MobileWeb + p.Kiosk
}

// Add returns the element-wise sum of p and o.
func (p PlatformSplit) Add(o PlatformSplit) PlatformSplit {
	return PlatformSplit{
		IOSApp:     p.IOSApp + o.IOSApp,
		AndroidApp: p.AndroidApp + o.AndroidApp,
		DesktopWeb: p.DesktopWeb + o.DesktopWeb,
		MobileWeb:  p.MobileWeb + o.MobileWeb,
		Kiosk:      p.Kiosk + o.Kiosk,
	}
}

// DailyMetrics is the activity of one location on one day.
//
// Invariants: every numeric field is non-negative, the channel orders sum
// to the record's total order count, and HourlyOrders sums to exactly the
// same total.
type DailyMetrics struct {
	Date         string         `json:"date"`
	LocationID   string         `json:"location_id"`
	Sessions     int            `json:"sessions"`
	Orders       ChannelCounts  `json:"orders"`
	Revenue      ChannelAmounts `json:"revenue"`
	Customers    CustomerSplit  `json:"customers"`
	HourlyOrders [24]int        `json:"hourly_orders"`
	Platforms    PlatformSplit  `json:"platforms"`
}

// ChannelOrders returns the order count for ch. Unknown channels count as
// ChannelAll.
func (m DailyMetrics) ChannelOrders(ch Channel) int {
	switch ch {
	case ChannelPickup:
		return m.Orders.Pickup
	case ChannelDelivery:
		return m.Orders.Delivery
	case ChannelCatering:
		return m.Orders.Catering
	default:
		return m.Orders.Total()
	}
}

// ChannelRevenue returns the revenue for ch. Unknown channels count as
// ChannelAll.
func (m DailyMetrics) ChannelRevenue(ch Channel) float64 {
	switch ch {
	case ChannelPickup:
		return m.Revenue.Pickup
	case ChannelDelivery:
		return m.Revenue.Delivery
	case ChannelCatering:
		return m.Revenue.Catering
	default:
		return m.Revenue.Total()
	}
}

// ProductSale is the units and revenue of one product at one location on one day.
type ProductSale struct {
	Date       string  `json:"date"`
	LocationID string  `json:"location_id"`
	ProductID  string  `json:"product_id"`
	Units      int     `json:"units"`
	Revenue    float64 `json:"revenue"`
}

// SampleOverviewData is the complete synthetic corpus for one seed.
// It is read-only once built.
type SampleOverviewData struct {
	Seed         int64          `json:"seed"`
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	Locations    []Location     `json:"locations"`
	Products     []Product      `json:"products"`
	DailyMetrics []DailyMetrics `json:"daily_metrics"`
	ProductSales []ProductSale  `json:"product_sales"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// DatasetSummary describes a corpus without carrying its records.
type DatasetSummary struct {
	Seed              int64     `json:"seed"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	Days              int       `json:"days"`
	LocationCount     int       `json:"location_count"`
	ProductCount      int       `json:"product_count"`
	DailyMetricsCount int       `json:"daily_metrics_count"`
	ProductSalesCount int       `json:"product_sales_count"`
	GeneratedAt       time.Time `json:"generated_at"`
}
