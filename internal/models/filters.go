// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package models

import "time"

// DateFormat is the layout of every date string in the corpus.
const DateFormat = "2006-01-02"

// RangePreset selects the current period.
type RangePreset string

const (
	RangeLast7Days  RangePreset = "7d"
	RangeLast30Days RangePreset = "30d"
	RangeLast90Days RangePreset = "90d"
	RangeCustom     RangePreset = "custom"
)

// Days returns the period length of a named preset, or 0 for RangeCustom
// and unknown values.
func (p RangePreset) Days() int {
	switch p {
	case RangeLast7Days:
		return 7
	case RangeLast30Days:
		return 30
	case RangeLast90Days:
		return 90
	}
	return 0
}

// Interval is the bucket size of a time series.
type Interval string

const (
	IntervalDay  Interval = "day"
	IntervalWeek Interval = "week"
)

// FilterState is the dashboard's filter selection. The analytics engine
// reads it and never modifies it.
//
// CustomStart and CustomEnd are only consulted when Preset is RangeCustom.
// An empty LocationIDs means every location.
type FilterState struct {
	Preset      RangePreset `json:"preset"`
	CustomStart string      `json:"custom_start,omitempty"`
	CustomEnd   string      `json:"custom_end,omitempty"`
	Interval    Interval    `json:"interval"`
	Channel     Channel     `json:"channel"`
	LocationIDs []string    `json:"location_ids,omitempty"`
}

// DefaultFilterState returns the selection a dashboard opens with.
func DefaultFilterState() FilterState {
	return FilterState{
		Preset:   RangeLast30Days,
		Interval: IntervalDay,
		Channel:  ChannelAll,
	}
}

// DateRange is an inclusive range of yyyy-MM-dd dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// InclusiveDays counts the calendar days from start to end, both included.
// Both times must be midnights in the same location. It works on Unix
// seconds, so spans longer than time.Duration can hold are still exact.
func InclusiveDays(start, end time.Time) int {
	return int((end.Unix()-start.Unix())/86400) + 1
}

// Contains reports whether date falls inside the range.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}
