// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package models

// ProductCategory groups products on the menu.
type ProductCategory string

const (
	CategoryBowls    ProductCategory = "Bowls"
	CategorySalads   ProductCategory = "Salads"
	CategoryDrinks   ProductCategory = "Drinks"
	CategorySides    ProductCategory = "Sides"
	CategoryDesserts ProductCategory = "Desserts"
)

// ProductCategories lists every category in menu order.
var ProductCategories = []ProductCategory{
	CategoryBowls,
	CategorySalads,
	CategoryDrinks,
	CategorySides,
	CategoryDesserts,
}

// Location is a storefront in the catalog.
type Location struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

// Product is a menu item in the catalog.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  ProductCategory `json:"category"`
	BasePrice float64         `json:"base_price"`
}
