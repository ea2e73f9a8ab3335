/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import "fmt"

// ReferenceData is a comparison cohort for a single patient.
type ReferenceData struct {
	Ages                []float64 `json:"ages"`
	ComorbidSeverities  []float64 `json:"comorbid_severities"`
	ComorbidMortalities []float64 `json:"comorbid_mortalities"`
}

// ReAdmissionData is a time series of 30-day readmission rates. Dates and
// ReadmissionRates are index-aligned.
type ReAdmissionData struct {
	Dates            []string  `json:"dates"`
	ReadmissionRates []float64 `json:"readmissionRates"`
}

// Validate checks that the two series have the same length.
func (d ReAdmissionData) Validate() error {
	if len(d.Dates) != len(d.ReadmissionRates) {
		return fmt.Errorf("%w: %d dates, %d rates", ErrMisalignedSeries, len(d.Dates), len(d.ReadmissionRates))
	}

	return nil
}

// Trend chart titles.
const (
	AxisTitleDate         = "Date"
	AxisTitleReadmission  = "30-Day Readmission Rate"
	SeriesReadmissionRate = "Readmission Rate"
	ChartTypeLine         = "line"
	TrendChartWidth       = 900
	TrendChartHeight      = 320
)

// ReadmissionTrendChart builds the aggregate readmission rate chart.
func ReadmissionTrendChart(d ReAdmissionData) (ChartOptions, error) {
	if err := d.Validate(); err != nil {
		return ChartOptions{}, err
	}

	data := make([]ChartPoint, 0, len(d.ReadmissionRates))
	for _, rate := range d.ReadmissionRates {
		data = append(data, ChartPoint{Y: rate, Marker: MarkerDefault})
	}

	categories := make([]string, len(d.Dates))
	copy(categories, d.Dates)

	return ChartOptions{
		Type:       ChartTypeLine,
		Width:      TrendChartWidth,
		Height:     TrendChartHeight,
		XAxisTitle: AxisTitleDate,
		YAxisTitle: AxisTitleReadmission,
		Categories: categories,
		SeriesName: SeriesReadmissionRate,
		Data:       data,
	}, nil
}
