// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package dataset

import (
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/storeboard/internal/models"
	"github.com/tomtom215/storeboard/internal/rng"
)

var (
	testEnd = time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	testNow = func() time.Time { return testEnd }
)

func buildTestDataset(t *testing.T, seed int64) *models.SampleOverviewData {
	t.Helper()
	return BuildWithOptions(Options{Seed: seed, End: testEnd, Location: time.UTC, Now: testNow})
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	a := buildTestDataset(t, 42)
	b := buildTestDataset(t, 42)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected identical datasets for the same seed")
	}

	c := buildTestDataset(t, 43)
	if reflect.DeepEqual(a.DailyMetrics, c.DailyMetrics) {
		t.Error("expected different seeds to produce different metrics")
	}
}

func TestBuild_DefaultsUseToday(t *testing.T) {
	t.Parallel()

	a := Build(42)
	b := Build(42)

	if len(a.DailyMetrics) != DefaultDays*len(catalogLocations) {
		t.Errorf("got %d daily metrics, want %d", len(a.DailyMetrics), DefaultDays*len(catalogLocations))
	}
	if a.EndDate != time.Now().Format(models.DateFormat) && a.EndDate != time.Now().AddDate(0, 0, -1).Format(models.DateFormat) {
		t.Errorf("EndDate = %s, expected today", a.EndDate)
	}
	// Builds straddling midnight are the only legitimate difference.
	if a.EndDate == b.EndDate && !reflect.DeepEqual(a.DailyMetrics, b.DailyMetrics) {
		t.Error("expected Build(42) to be reproducible")
	}
}

func TestBuild_Window(t *testing.T) {
	t.Parallel()

	ds := buildTestDataset(t, 42)

	if ds.EndDate != "2024-03-15" {
		t.Errorf("EndDate = %s, want 2024-03-15", ds.EndDate)
	}
	if ds.StartDate != "2023-11-17" {
		t.Errorf("StartDate = %s, want 2023-11-17", ds.StartDate)
	}
	if len(ds.Locations) != 12 {
		t.Errorf("got %d locations, want 12", len(ds.Locations))
	}
	if len(ds.Products) != 25 {
		t.Errorf("got %d products, want 25", len(ds.Products))
	}
	if len(ds.DailyMetrics) != 120*12 {
		t.Fatalf("got %d daily metrics, want %d", len(ds.DailyMetrics), 120*12)
	}
	if !ds.GeneratedAt.Equal(testEnd) {
		t.Errorf("GeneratedAt = %v, want %v", ds.GeneratedAt, testEnd)
	}

	// Chronological, then catalog order within a day.
	for i, m := range ds.DailyMetrics {
		wantLoc := catalogLocations[i%12].ID
		if m.LocationID != wantLoc {
			t.Fatalf("record %d location = %s, want %s", i, m.LocationID, wantLoc)
		}
		if i > 0 && m.Date < ds.DailyMetrics[i-1].Date {
			t.Fatalf("record %d date %s precedes %s", i, m.Date, ds.DailyMetrics[i-1].Date)
		}
	}
	if ds.DailyMetrics[0].Date != ds.StartDate || ds.DailyMetrics[len(ds.DailyMetrics)-1].Date != ds.EndDate {
		t.Error("expected records to span StartDate..EndDate")
	}
}

func TestBuild_EndDateUsesLocation(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	// 02:00 UTC on the 16th is still the 15th in New York.
	ds := BuildWithOptions(Options{
		Seed:     1,
		Days:     7,
		End:      time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC),
		Location: ny,
		Now:      testNow,
	})
	if ds.EndDate != "2024-03-15" {
		t.Errorf("EndDate = %s, want 2024-03-15", ds.EndDate)
	}
	if ds.StartDate != "2024-03-09" {
		t.Errorf("StartDate = %s, want 2024-03-09", ds.StartDate)
	}
}

func TestBuild_RecordInvariants(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 42, 2024, -5} {
		ds := buildTestDataset(t, seed)

		for _, m := range ds.DailyMetrics {
			total := m.Orders.Pickup + m.Orders.Delivery + m.Orders.Catering
			if total != m.ChannelOrders(models.ChannelAll) {
				t.Fatalf("seed %d %s/%s: channel orders do not sum to all-channel total", seed, m.Date, m.LocationID)
			}
			revenue := m.Revenue.Pickup + m.Revenue.Delivery + m.Revenue.Catering
			if revenue != m.ChannelRevenue(models.ChannelAll) {
				t.Fatalf("seed %d %s/%s: channel revenue does not sum to all-channel total", seed, m.Date, m.LocationID)
			}

			hourly := 0
			for _, n := range m.HourlyOrders {
				if n < 0 {
					t.Fatalf("seed %d %s/%s: negative hourly count", seed, m.Date, m.LocationID)
				}
				hourly += n
			}
			if hourly != total {
				t.Fatalf("seed %d %s/%s: hourly sum %d != total %d", seed, m.Date, m.LocationID, hourly, total)
			}

			if m.Platforms.Total() != total {
				t.Fatalf("seed %d %s/%s: platform sum %d != total %d", seed, m.Date, m.LocationID, m.Platforms.Total(), total)
			}
			if m.Customers.NewOrders+m.Customers.ReturningOrders != total {
				t.Fatalf("seed %d %s/%s: customer split does not sum to total", seed, m.Date, m.LocationID)
			}
			if m.Customers.LoyaltyRedemptions > m.Customers.ReturningOrders {
				t.Fatalf("seed %d %s/%s: loyalty exceeds returning orders", seed, m.Date, m.LocationID)
			}

			for _, v := range []int{
				m.Sessions, m.Orders.Pickup, m.Orders.Delivery, m.Orders.Catering,
				m.Customers.NewOrders, m.Customers.ReturningOrders, m.Customers.LoyaltyRedemptions,
				m.Platforms.IOSApp, m.Platforms.AndroidApp, m.Platforms.DesktopWeb, m.Platforms.MobileWeb, m.Platforms.Kiosk,
			} {
				if v < 0 {
					t.Fatalf("seed %d %s/%s: negative field in %+v", seed, m.Date, m.LocationID, m)
				}
			}
			if m.Revenue.Pickup < 0 || m.Revenue.Delivery < 0 || m.Revenue.Catering < 0 {
				t.Fatalf("seed %d %s/%s: negative revenue", seed, m.Date, m.LocationID)
			}
			if total > m.Sessions {
				t.Fatalf("seed %d %s/%s: more orders than sessions", seed, m.Date, m.LocationID)
			}
		}
	}
}

func TestBuild_ProductSales(t *testing.T) {
	t.Parallel()

	ds := buildTestDataset(t, 42)

	type key struct{ date, loc string }
	totals := make(map[key]int, len(ds.DailyMetrics))
	for _, m := range ds.DailyMetrics {
		totals[key{m.Date, m.LocationID}] = m.Orders.Total()
	}

	rows := make(map[key]int)
	units := make(map[key]int)
	seen := make(map[key]map[string]bool)
	for _, s := range ds.ProductSales {
		k := key{s.Date, s.LocationID}
		if _, ok := totals[k]; !ok {
			t.Fatalf("sale for unknown (date, location) %v", k)
		}
		if s.Units <= 0 || s.Revenue < 0 {
			t.Fatalf("invalid sale %+v", s)
		}
		if _, ok := ProductByID(s.ProductID); !ok {
			t.Fatalf("sale for unknown product %s", s.ProductID)
		}
		if seen[k] == nil {
			seen[k] = make(map[string]bool)
		}
		if seen[k][s.ProductID] {
			t.Fatalf("product %s sold twice at %v", s.ProductID, k)
		}
		seen[k][s.ProductID] = true
		rows[k]++
		units[k] += s.Units
	}

	for k, n := range rows {
		if n > 25 {
			t.Errorf("%v has %d sale rows, want at most 25", k, n)
		}
		if float64(units[k]) > float64(totals[k])*2.5+0.5 {
			t.Errorf("%v units %d exceed the items target for %d orders", k, units[k], totals[k])
		}
	}
}

func TestBuild_PriceVariationBounds(t *testing.T) {
	t.Parallel()

	ds := buildTestDataset(t, 7)
	for _, s := range ds.ProductSales {
		p, _ := ProductByID(s.ProductID)
		lo := float64(s.Units)*p.BasePrice*0.95 - 0.01
		hi := float64(s.Units)*p.BasePrice*1.05 + 0.01
		if s.Revenue < lo || s.Revenue > hi {
			t.Fatalf("sale %+v revenue outside price variation for base %.2f", s, p.BasePrice)
		}
	}
}

func TestDistributeHourly_Exact(t *testing.T) {
	t.Parallel()

	g := rng.New(99)
	for _, total := range []int{0, 1, 7, 23, 24, 150, 999} {
		hourly := distributeHourly(g, total)
		sum := 0
		for _, n := range hourly {
			if n < 0 {
				t.Fatalf("total %d: negative hour count %v", total, hourly)
			}
			sum += n
		}
		if sum != total {
			t.Errorf("total %d: hourly sum = %d", total, sum)
		}
	}
}

func TestDistributeHourly_LunchPeak(t *testing.T) {
	t.Parallel()

	hourly := distributeHourly(rng.New(1), 1000)
	if hourly[12] <= hourly[4] || hourly[19] <= hourly[3] {
		t.Errorf("expected meal peaks to dominate early morning: %v", hourly)
	}
}

func TestSplitPlatforms_Exact(t *testing.T) {
	t.Parallel()

	g := rng.New(5)
	for _, total := range []int{0, 1, 4, 100, 333} {
		p := splitPlatforms(g, total)
		if p.Total() != total {
			t.Errorf("total %d: platform sum = %d", total, p.Total())
		}
		if p.Kiosk < 0 {
			t.Errorf("total %d: negative kiosk count", total)
		}
	}
}

func TestBuild_DrawOrderStartsWithLocationFactors(t *testing.T) {
	t.Parallel()

	// The first record's sessions draw follows the 12 factor draws.
	g := rng.New(42)
	factors := make([]float64, 12)
	for i := range factors {
		factors[i] = g.Float(0.7, 1.3)
	}
	start := testEnd.AddDate(0, 0, -119)
	want := buildDailyMetrics(g, start.Format(models.DateFormat), "loc-01",
		dayOfWeekMultiplier[start.Weekday()]*factors[0])

	ds := buildTestDataset(t, 42)
	if !reflect.DeepEqual(ds.DailyMetrics[0], want) {
		t.Errorf("first record = %+v, want %+v", ds.DailyMetrics[0], want)
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	perCategory := make(map[models.ProductCategory]int)
	for _, p := range Products() {
		perCategory[p.Category]++
		if p.BasePrice <= 0 {
			t.Errorf("product %s has non-positive price", p.ID)
		}
		if _, ok := categoryPopularity[p.Category]; !ok {
			t.Errorf("product %s has category without popularity", p.ID)
		}
	}
	for _, c := range models.ProductCategories {
		if perCategory[c] != 5 {
			t.Errorf("category %s has %d products, want 5", c, perCategory[c])
		}
	}

	if categoryPopularity[models.CategoryBowls] <= categoryPopularity[models.CategorySalads] ||
		categoryPopularity[models.CategorySalads] <= categoryPopularity[models.CategoryDrinks] ||
		categoryPopularity[models.CategoryDrinks] <= categoryPopularity[models.CategorySides] ||
		categoryPopularity[models.CategorySides] <= categoryPopularity[models.CategoryDesserts] {
		t.Error("expected popularity Bowls > Salads > Drinks > Sides > Desserts")
	}

	for _, l := range Locations() {
		if _, err := time.LoadLocation(l.Timezone); err != nil {
			t.Logf("timezone %s not loadable here: %v", l.Timezone, err)
		}
	}

	if _, ok := LocationByID("loc-12"); !ok {
		t.Error("expected loc-12 to exist")
	}
	if _, ok := LocationByID("loc-99"); ok {
		t.Error("expected loc-99 to be unknown")
	}

	locs := Locations()
	locs[0].Name = "mutated"
	if catalogLocations[0].Name == "mutated" {
		t.Error("Locations must return a copy")
	}
}

func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BuildWithOptions(Options{Seed: 42, End: testEnd, Location: time.UTC, Now: testNow})
	}
}
