// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package dataset

import (
	"math"
	"time"

	"github.com/tomtom215/storeboard/internal/models"
	"github.com/tomtom215/storeboard/internal/numeric"
	"github.com/tomtom215/storeboard/internal/rng"
)

const (
	// DefaultSeed is the seed used when none is supplied.
	DefaultSeed int64 = 42

	// DefaultDays is the length of the trailing window.
	DefaultDays = 120
)

// dayOfWeekMultiplier is indexed by time.Weekday (Sunday first).
var dayOfWeekMultiplier = [7]float64{1.15, 0.85, 0.9, 0.95, 1.0, 1.2, 1.3}

// hourlyWeights is the base demand curve with lunch and dinner peaks.
var hourlyWeights = [24]float64{
	0.1, 0.05, 0.03, 0.02, 0.02, 0.05, // 00-05
	0.2, 0.5, 0.8, 0.9, 1.2, 2.2, // 06-11
	3.2, 2.6, 1.4, 1.0, 1.1, 1.8, // 12-17
	2.8, 3.0, 2.2, 1.3, 0.6, 0.3, // 18-23
}

// span is a half-open draw range.
type span struct{ min, max float64 }

var (
	sessionsBase     = [2]int{800, 1400}
	conversionRate   = span{0.15, 0.25}
	pickupShare      = span{0.45, 0.55}
	deliveryShare    = span{0.30, 0.40}
	pickupAOV        = span{12, 18}
	deliveryAOV      = span{18, 26}
	cateringAOV      = span{85, 160}
	returningRate    = span{0.35, 0.55}
	loyaltyFraction  = span{0.2, 0.4}
	hourlyJitter     = span{0.8, 1.2}
	locationFactor   = span{0.7, 1.3}
	itemsPerOrder    = span{1.8, 2.5}
	priceVariation   = span{0.95, 1.05}
	saleRowCount     = [2]int{10, 25}
	saleUnitsBase    = [2]int{2, 15}
	minPlatformShare = 0.05
)

// platformShares are the draw ranges of the first four platforms; the
// fifth (kiosk) takes the remainder, floored at minPlatformShare.
var platformShares = [4]span{
	{0.25, 0.35}, // iOS app
	{0.20, 0.30}, // Android app
	{0.15, 0.25}, // desktop web
	{0.10, 0.20}, // mobile web
}

// Options controls a dataset build. Zero values select the defaults.
type Options struct {
	Seed int64

	// Days is the window length ending at End, inclusive.
	Days int

	// End is the last day of the window. Only the calendar date in
	// Location matters. Zero means today.
	End time.Time

	// Location defines local midnight. Nil means time.Local.
	Location *time.Location

	// Now stamps GeneratedAt. Nil means time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Days <= 0 {
		o.Days = DefaultDays
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.End.IsZero() {
		o.End = o.Now()
	}
	return o
}

// Build synthesizes the default 120-day corpus ending today for seed.
func Build(seed int64) *models.SampleOverviewData {
	return BuildWithOptions(Options{Seed: seed})
}

// BuildWithOptions synthesizes a corpus.
//
// Draws happen in a fixed order: one factor per location in catalog order,
// then for each day oldest first and each location in catalog order, the
// metrics draws followed by the product-sale draws. Changing that order
// changes the output for every seed.
func BuildWithOptions(opts Options) *models.SampleOverviewData {
	opts = opts.withDefaults()
	g := rng.New(opts.Seed)

	y, m, d := opts.End.In(opts.Location).Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, opts.Location)
	start := end.AddDate(0, 0, -(opts.Days - 1))

	factors := make([]float64, len(catalogLocations))
	for i := range catalogLocations {
		factors[i] = g.Float(locationFactor.min, locationFactor.max)
	}

	ds := &models.SampleOverviewData{
		Seed:         rng.NormalizeSeed(opts.Seed),
		StartDate:    start.Format(models.DateFormat),
		EndDate:      end.Format(models.DateFormat),
		Locations:    Locations(),
		Products:     Products(),
		DailyMetrics: make([]models.DailyMetrics, 0, opts.Days*len(catalogLocations)),
		ProductSales: make([]models.ProductSale, 0, opts.Days*len(catalogLocations)*18),
	}

	for day := 0; day < opts.Days; day++ {
		date := start.AddDate(0, 0, day)
		dateStr := date.Format(models.DateFormat)
		dow := dayOfWeekMultiplier[date.Weekday()]

		for i, loc := range catalogLocations {
			metrics := buildDailyMetrics(g, dateStr, loc.ID, dow*factors[i])
			ds.DailyMetrics = append(ds.DailyMetrics, metrics)
			ds.ProductSales = appendProductSales(ds.ProductSales, g, dateStr, loc.ID, metrics.Orders.Total())
		}
	}

	ds.GeneratedAt = opts.Now()
	return ds
}

// buildDailyMetrics draws one (date, location) record. multiplier combines
// the day-of-week and location factors.
func buildDailyMetrics(g *rng.Generator, date, locationID string, multiplier float64) models.DailyMetrics {
	sessions := numeric.RoundInt(float64(g.Int(sessionsBase[0], sessionsBase[1])) * multiplier)
	total := numeric.RoundInt(float64(sessions) * g.Float(conversionRate.min, conversionRate.max))

	pShare := g.Float(pickupShare.min, pickupShare.max)
	dShare := g.Float(deliveryShare.min, deliveryShare.max)
	orders := models.ChannelCounts{
		Pickup:   int(math.Floor(float64(total) * pShare)),
		Delivery: int(math.Floor(float64(total) * dShare)),
	}
	orders.Catering = max(0, total-orders.Pickup-orders.Delivery)

	revenue := models.ChannelAmounts{
		Pickup:   numeric.Round2(float64(orders.Pickup) * g.Float(pickupAOV.min, pickupAOV.max)),
		Delivery: numeric.Round2(float64(orders.Delivery) * g.Float(deliveryAOV.min, deliveryAOV.max)),
		Catering: numeric.Round2(float64(orders.Catering) * g.Float(cateringAOV.min, cateringAOV.max)),
	}

	returning := numeric.RoundInt(float64(total) * g.Float(returningRate.min, returningRate.max))
	customers := models.CustomerSplit{
		NewOrders:          total - returning,
		ReturningOrders:    returning,
		LoyaltyRedemptions: numeric.RoundInt(float64(returning) * g.Float(loyaltyFraction.min, loyaltyFraction.max)),
	}

	return models.DailyMetrics{
		Date:         date,
		LocationID:   locationID,
		Sessions:     sessions,
		Orders:       orders,
		Revenue:      revenue,
		Customers:    customers,
		HourlyOrders: distributeHourly(g, total),
		Platforms:    splitPlatforms(g, total),
	}
}

// distributeHourly spreads total across 24 hours along the jittered demand
// curve. Hours are filled greedily and hour 23 takes whatever remains, so
// the result always sums to total.
func distributeHourly(g *rng.Generator, total int) [24]int {
	var weights [24]float64
	var sum float64
	for h := range weights {
		weights[h] = hourlyWeights[h] * g.Float(hourlyJitter.min, hourlyJitter.max)
		sum += weights[h]
	}

	var hourly [24]int
	remaining := total
	for h := 0; h < 23; h++ {
		n := min(remaining, numeric.RoundInt(float64(total)*weights[h]/sum))
		hourly[h] = n
		remaining -= n
	}
	hourly[23] = remaining

	return hourly
}

// splitPlatforms divides total across the five platforms. Shares are
// normalized to sum to 1; the last platform takes the integer remainder.
func splitPlatforms(g *rng.Generator, total int) models.PlatformSplit {
	var shares [5]float64
	var drawn float64
	for i, s := range platformShares {
		shares[i] = g.Float(s.min, s.max)
		drawn += shares[i]
	}
	shares[4] = math.Max(minPlatformShare, 1-drawn)

	sum := drawn + shares[4]
	counts := [4]int{}
	assigned := 0
	for i := range counts {
		counts[i] = int(math.Floor(float64(total) * shares[i] / sum))
		assigned += counts[i]
	}

	return models.PlatformSplit{
		IOSApp:     counts[0],
		AndroidApp: counts[1],
		DesktopWeb: counts[2],
		MobileWeb:  counts[3],
		Kiosk:      total - assigned,
	}
}

// appendProductSales draws the product rows for one (date, location).
// Units are capped cumulatively at a target proportional to the order
// count; drawing stops once the target is reached.
func appendProductSales(sales []models.ProductSale, g *rng.Generator, date, locationID string, totalOrders int) []models.ProductSale {
	rows := g.Int(saleRowCount[0], saleRowCount[1])
	shuffled := rng.Shuffle(g, catalogProducts)
	target := numeric.RoundInt(float64(totalOrders) * g.Float(itemsPerOrder.min, itemsPerOrder.max))

	sold := 0
	for i := 0; i < rows && i < len(shuffled) && sold < target; i++ {
		p := shuffled[i]
		units := numeric.RoundInt(float64(g.Int(saleUnitsBase[0], saleUnitsBase[1])) * categoryPopularity[p.Category])
		units = min(units, target-sold)
		price := g.Float(priceVariation.min, priceVariation.max)
		if units <= 0 {
			continue
		}
		sold += units

		sales = append(sales, models.ProductSale{
			Date:       date,
			LocationID: locationID,
			ProductID:  p.ID,
			Units:      units,
			Revenue:    numeric.Round2(float64(units) * p.BasePrice * price),
		})
	}

	return sales
}
