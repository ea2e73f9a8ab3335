// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"slices"
	"testing"
)

func TestCohortBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age   float64
		lower float64
		upper float64
		open  bool
	}{
		{age: 1, lower: 1, upper: 25},
		{age: 24.9, lower: 1, upper: 25},
		{age: 25, lower: 25, upper: 50},
		{age: 49.99, lower: 25, upper: 50},
		{age: 50, lower: 50, open: true},
		{age: 91.4, lower: 50, open: true},
		{age: 0.5, lower: 50, open: true},
		{age: -3, lower: 50, open: true},
	}

	for _, tt := range tests {
		lower, upper := cohortBounds(tt.age)
		if lower != tt.lower {
			t.Fatalf("age %v: expected lower %v, got %v", tt.age, tt.lower, lower)
		}
		if tt.open {
			if upper != nil {
				t.Fatalf("age %v: expected open upper bound, got %v", tt.age, *upper)
			}
			continue
		}
		if upper == nil || *upper != tt.upper {
			t.Fatalf("age %v: expected upper %v, got %v", tt.age, tt.upper, upper)
		}
	}
}

func TestReferenceDataRoundsToTwoDecimals(t *testing.T) {
	t.Parallel()

	data := referenceData([]ReferenceSample{
		{Age: 12.346, AvgSeverity: 1.234, AvgMortality: 0.987},
		{Age: 30, AvgSeverity: 2.5, AvgMortality: 1.5},
	})

	if !slices.Equal(data.Ages, []float64{12.35, 30}) {
		t.Fatalf("unexpected ages: %v", data.Ages)
	}
	if !slices.Equal(data.ComorbidSeverities, []float64{1.23, 2.5}) {
		t.Fatalf("unexpected severities: %v", data.ComorbidSeverities)
	}
	if !slices.Equal(data.ComorbidMortalities, []float64{0.99, 1.5}) {
		t.Fatalf("unexpected mortalities: %v", data.ComorbidMortalities)
	}
}

func TestReferenceDataEmptyCohort(t *testing.T) {
	t.Parallel()

	data := referenceData(nil)
	if data.Ages == nil || len(data.Ages) != 0 {
		t.Fatalf("expected empty non-nil ages, got %#v", data.Ages)
	}
}

func TestReadmissionDataKeepsSeriesAligned(t *testing.T) {
	t.Parallel()

	data := readmissionData([]ReadmissionRate{
		{Date: "2016-01", ReadmissionRate: 0.12},
		{Date: "2016-02", ReadmissionRate: 0.15},
	})

	if err := data.Validate(); err != nil {
		t.Fatalf("expected aligned series, got %v", err)
	}
	if data.Dates[1] != "2016-02" || data.ReadmissionRates[1] != 0.15 {
		t.Fatalf("unexpected series: %+v", data)
	}
}
