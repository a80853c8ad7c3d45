// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/tomtom215/storeboard/internal/models"
)

func TestWriteLocationsCSV(t *testing.T) {
	t.Parallel()

	rows := []models.LocationPerformance{
		{LocationID: "loc-01", Name: "Downtown, Main St", Revenue: 1234.5, Orders: 100, AverageOrderValue: 12.346},
		{LocationID: "loc-02", Name: `The "Annex"`, Revenue: 0, Orders: 0},
	}

	var buf bytes.Buffer
	if err := writeLocationsCSV(&buf, rows); err != nil {
		t.Fatalf("writeLocationsCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	want := [][]string{
		locationCSVHeader,
		{"1", "loc-01", "Downtown, Main St", "1234.50", "100", "12.35"},
		{"2", "loc-02", `The "Annex"`, "0.00", "0", "0.00"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if records[i][j] != want[i][j] {
				t.Errorf("record %d field %d = %q, want %q", i, j, records[i][j], want[i][j])
			}
		}
	}
}

func TestWriteProductsCSV(t *testing.T) {
	t.Parallel()

	rows := []models.ProductPerformance{
		{ProductID: "prd-03", Name: "Harvest Bowl", Category: models.CategoryBowls, Revenue: 99.999, Units: 7},
	}

	var buf bytes.Buffer
	if err := writeProductsCSV(&buf, rows); err != nil {
		t.Fatalf("writeProductsCSV: %v", err)
	}

	want := "rank,product_id,name,category,revenue,units\n1,prd-03,Harvest Bowl,Bowls,100.00,7\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestCSVWriters_RejectWrongType(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeLocationsCSV(&buf, []models.ProductPerformance{}); err == nil {
		t.Error("writeLocationsCSV accepted product rows")
	}
	if err := writeProductsCSV(&buf, "nope"); err == nil {
		t.Error("writeProductsCSV accepted a string")
	}
}
