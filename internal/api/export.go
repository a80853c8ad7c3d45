// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tomtom215/storeboard/internal/models"
)

var (
	locationCSVHeader = []string{"rank", "location_id", "name", "revenue", "orders", "average_order_value"}
	productCSVHeader  = []string{"rank", "product_id", "name", "category", "revenue", "units"}
)

// writeLocationsCSV renders a location leaderboard.
func writeLocationsCSV(buf *bytes.Buffer, data interface{}) error {
	rows, ok := data.([]models.LocationPerformance)
	if !ok {
		return fmt.Errorf("location export: unexpected result type %T", data)
	}

	writer := csv.NewWriter(buf)
	if err := writer.Write(locationCSVHeader); err != nil {
		return fmt.Errorf("location export: %w", err)
	}
	for i, row := range rows {
		record := []string{
			strconv.Itoa(i + 1),
			row.LocationID,
			row.Name,
			formatMoney(row.Revenue),
			strconv.Itoa(row.Orders),
			formatMoney(row.AverageOrderValue),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("location export: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeProductsCSV renders a product ranking.
func writeProductsCSV(buf *bytes.Buffer, data interface{}) error {
	rows, ok := data.([]models.ProductPerformance)
	if !ok {
		return fmt.Errorf("product export: unexpected result type %T", data)
	}

	writer := csv.NewWriter(buf)
	if err := writer.Write(productCSVHeader); err != nil {
		return fmt.Errorf("product export: %w", err)
	}
	for i, row := range rows {
		record := []string{
			strconv.Itoa(i + 1),
			row.ProductID,
			row.Name,
			string(row.Category),
			formatMoney(row.Revenue),
			strconv.Itoa(row.Units),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("product export: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
