// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package dataset

import "github.com/tomtom215/storeboard/internal/models"

// catalogLocations is the fixed storefront list. Order matters: location
// factors are drawn in this order.
var catalogLocations = []models.Location{
	{ID: "loc-01", Name: "Downtown Flagship", Timezone: "America/New_York"},
	{ID: "loc-02", Name: "Riverside Commons", Timezone: "America/New_York"},
	{ID: "loc-03", Name: "Harbor Point", Timezone: "America/New_York"},
	{ID: "loc-04", Name: "University District", Timezone: "America/Chicago"},
	{ID: "loc-05", Name: "Lakeshore Market", Timezone: "America/Chicago"},
	{ID: "loc-06", Name: "Midtown Plaza", Timezone: "America/Chicago"},
	{ID: "loc-07", Name: "Old Town Square", Timezone: "America/Denver"},
	{ID: "loc-08", Name: "Foothills Crossing", Timezone: "America/Denver"},
	{ID: "loc-09", Name: "Mission Bay", Timezone: "America/Los_Angeles"},
	{ID: "loc-10", Name: "Pearl District", Timezone: "America/Los_Angeles"},
	{ID: "loc-11", Name: "Capitol Hill", Timezone: "America/Los_Angeles"},
	{ID: "loc-12", Name: "Airport Terminal B", Timezone: "America/Phoenix"},
}

// catalogProducts is the fixed menu, five items per category. Order
// matters: it is the input to the per-day shuffle.
var catalogProducts = []models.Product{
	{ID: "prd-01", Name: "Harvest Grain Bowl", Category: models.CategoryBowls, BasePrice: 13.95},
	{ID: "prd-02", Name: "Spicy Chicken Bowl", Category: models.CategoryBowls, BasePrice: 14.50},
	{ID: "prd-03", Name: "Salmon Poke Bowl", Category: models.CategoryBowls, BasePrice: 16.25},
	{ID: "prd-04", Name: "Falafel Bowl", Category: models.CategoryBowls, BasePrice: 12.95},
	{ID: "prd-05", Name: "Steak Burrito Bowl", Category: models.CategoryBowls, BasePrice: 15.75},
	{ID: "prd-06", Name: "Classic Caesar", Category: models.CategorySalads, BasePrice: 11.50},
	{ID: "prd-07", Name: "Greek Salad", Category: models.CategorySalads, BasePrice: 11.95},
	{ID: "prd-08", Name: "Cobb Salad", Category: models.CategorySalads, BasePrice: 13.25},
	{ID: "prd-09", Name: "Kale Crunch", Category: models.CategorySalads, BasePrice: 12.25},
	{ID: "prd-10", Name: "Southwest Salad", Category: models.CategorySalads, BasePrice: 12.75},
	{ID: "prd-11", Name: "Fresh Lemonade", Category: models.CategoryDrinks, BasePrice: 3.95},
	{ID: "prd-12", Name: "Iced Green Tea", Category: models.CategoryDrinks, BasePrice: 3.50},
	{ID: "prd-13", Name: "Cold Brew", Category: models.CategoryDrinks, BasePrice: 4.75},
	{ID: "prd-14", Name: "Sparkling Water", Category: models.CategoryDrinks, BasePrice: 2.95},
	{ID: "prd-15", Name: "Green Smoothie", Category: models.CategoryDrinks, BasePrice: 6.50},
	{ID: "prd-16", Name: "Sweet Potato Fries", Category: models.CategorySides, BasePrice: 4.50},
	{ID: "prd-17", Name: "Garlic Flatbread", Category: models.CategorySides, BasePrice: 3.75},
	{ID: "prd-18", Name: "Tomato Basil Soup", Category: models.CategorySides, BasePrice: 5.25},
	{ID: "prd-19", Name: "Chips and Guacamole", Category: models.CategorySides, BasePrice: 5.95},
	{ID: "prd-20", Name: "Side Salad", Category: models.CategorySides, BasePrice: 4.25},
	{ID: "prd-21", Name: "Chocolate Chip Cookie", Category: models.CategoryDesserts, BasePrice: 2.95},
	{ID: "prd-22", Name: "Fudge Brownie", Category: models.CategoryDesserts, BasePrice: 3.50},
	{ID: "prd-23", Name: "Seasonal Fruit Cup", Category: models.CategoryDesserts, BasePrice: 4.25},
	{ID: "prd-24", Name: "Lemon Cheesecake", Category: models.CategoryDesserts, BasePrice: 6.25},
	{ID: "prd-25", Name: "Cinnamon Churros", Category: models.CategoryDesserts, BasePrice: 4.95},
}

// categoryPopularity scales unit draws per category.
var categoryPopularity = map[models.ProductCategory]float64{
	models.CategoryBowls:    1.6,
	models.CategorySalads:   1.35,
	models.CategoryDrinks:   1.2,
	models.CategorySides:    1.1,
	models.CategoryDesserts: 1.0,
}

// Locations returns a copy of the location catalog.
func Locations() []models.Location {
	return append([]models.Location(nil), catalogLocations...)
}

// Products returns a copy of the product catalog.
func Products() []models.Product {
	return append([]models.Product(nil), catalogProducts...)
}

// LocationByID returns the catalog location with id.
func LocationByID(id string) (models.Location, bool) {
	for _, l := range catalogLocations {
		if l.ID == id {
			return l, true
		}
	}
	return models.Location{}, false
}

// ProductByID returns the catalog product with id.
func ProductByID(id string) (models.Product, bool) {
	for _, p := range catalogProducts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
