// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"strings"
	"testing"

	"github.com/humaidq/riskboard/dashboard"
)

func TestChartPointsEnlargePatientMarker(t *testing.T) {
	t.Parallel()

	points := chartPoints([]dashboard.ChartPoint{
		{Y: 3, Marker: dashboard.MarkerDefault},
		{Y: 5, Marker: dashboard.MarkerPatient},
	})

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}

	if points[0].SymbolSize != markerSize || points[1].SymbolSize != patientMarkerSize {
		t.Fatalf("unexpected symbol sizes: %d, %d", points[0].SymbolSize, points[1].SymbolSize)
	}

	if points[1].Symbol != dashboard.MarkerPatient {
		t.Fatalf("expected patient symbol, got %q", points[1].Symbol)
	}
}

func TestRenderChart(t *testing.T) {
	t.Parallel()

	d := dashboard.BucketComorbidities([]float64{0.5, 1.2, 3.9})
	chart := dashboard.ComorbidChart(d, 1.2)

	html, err := renderChart(chart, "Comorbidity Severity")
	if err != nil {
		t.Fatalf("renderChart returned error: %v", err)
	}

	out := string(html)
	for _, want := range []string{"Comorbidity Severity", "580px", dashboard.MarkerPatient} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected rendered chart to contain %q", want)
		}
	}
}
