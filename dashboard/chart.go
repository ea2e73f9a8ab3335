/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import "slices"

// Chart defaults shared by the distribution charts.
const (
	ChartTypeSpline    = "spline"
	ChartWidth         = 580
	ChartHeight        = 230
	AxisTitleRange     = "Range"
	AxisTitleCount     = "Patient Count"
	SeriesPatientCount = "Patient Count"

	// MarkerDefault marks an ordinary data point.
	MarkerDefault = "circle"
	// MarkerPatient marks the bucket holding the current patient's value.
	MarkerPatient = "pin"
)

// ChartPoint is a single point of a chart series.
type ChartPoint struct {
	Y      float64 `json:"y"`
	Marker string  `json:"marker"`
}

// ChartOptions is the renderer-independent description of a chart.
type ChartOptions struct {
	Type       string       `json:"type"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	XAxisTitle string       `json:"xAxisTitle"`
	YAxisTitle string       `json:"yAxisTitle"`
	Categories []string     `json:"categories"`
	SeriesName string       `json:"seriesName"`
	Data       []ChartPoint `json:"data"`
}

// HighlightedIndex returns the index of the first point carrying the
// patient marker, or -1.
func (o ChartOptions) HighlightedIndex() int {
	return slices.IndexFunc(o.Data, func(p ChartPoint) bool { return p.Marker == MarkerPatient })
}

func countChart(categories []string, counts []int, highlight func(i int) bool) ChartOptions {
	data := make([]ChartPoint, 0, len(counts))
	for i, count := range counts {
		marker := MarkerDefault
		if highlight(i) {
			marker = MarkerPatient
		}
		data = append(data, ChartPoint{Y: float64(count), Marker: marker})
	}

	return ChartOptions{
		Type:       ChartTypeSpline,
		Width:      ChartWidth,
		Height:     ChartHeight,
		XAxisTitle: AxisTitleRange,
		YAxisTitle: AxisTitleCount,
		Categories: slices.Clone(categories),
		SeriesName: SeriesPatientCount,
		Data:       data,
	}
}

// ComorbidChart builds the chart for a comorbidity distribution, marking
// the band that holds patientValue. Any value below 1 marks the first band;
// a value of 4 or more (or NaN) marks nothing.
func ComorbidChart(d ComorbidDistribution, patientValue float64) ChartOptions {
	band := markerBand(patientValue)
	return countChart(ComorbidLabels, d.Counts(), func(i int) bool { return i == band })
}

func markerBand(v float64) int {
	if v < 0 {
		return 0
	}

	return BandIndex(v)
}

// SeverityChart builds the comorbidity severity chart for a patient.
func SeverityChart(severities ComorbidDistribution, p Patient) ChartOptions {
	return ComorbidChart(severities, p.ComorbidSeverity)
}

// MortalityChart builds the comorbidity mortality chart for a patient.
func MortalityChart(mortalities ComorbidDistribution, p Patient) ChartOptions {
	return ComorbidChart(mortalities, p.ComorbidMortality)
}

// AgeChart builds the age distribution chart, marking every bucket whose
// members include the patient's age.
func AgeChart(buckets []AgeBucket, p Patient) ChartOptions {
	counts := make([]int, 0, len(buckets))
	for _, b := range buckets {
		counts = append(counts, len(b.Members))
	}

	return countChart(Labels(buckets), counts, func(i int) bool {
		return slices.Contains(buckets[i].Members, p.Age)
	})
}
