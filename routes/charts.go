/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	htmltemplate "html/template"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/riskboard/dashboard"
)

const (
	markerSize        = 8
	patientMarkerSize = 22
	seriesColor       = "#337AB7"
)

func chartPoints(data []dashboard.ChartPoint) []opts.LineData {
	points := make([]opts.LineData, 0, len(data))

	for _, p := range data {
		size := markerSize
		if p.Marker == dashboard.MarkerPatient {
			size = patientMarkerSize
		}

		points = append(points, opts.LineData{
			Value:      p.Y,
			Symbol:     p.Marker,
			SymbolSize: size,
		})
	}

	return points
}

func newLineChart(o dashboard.ChartOptions, title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     strconv.Itoa(o.Width) + "px",
			Height:    strconv.Itoa(o.Height) + "px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: o.XAxisTitle,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: o.YAxisTitle,
		}),
		charts.WithColorsOpts(opts.Colors{seriesColor}),
	)

	line.SetXAxis(o.Categories).
		AddSeries(o.SeriesName, chartPoints(o.Data)).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(o.Type == dashboard.ChartTypeSpline),
				ShowSymbol: opts.Bool(true),
			}),
		)

	return line
}

// renderChart renders chart options into an embeddable HTML document.
func renderChart(o dashboard.ChartOptions, title string) (htmltemplate.HTML, error) {
	var buf bytes.Buffer
	if err := newLineChart(o, title).Render(&buf); err != nil {
		return "", err
	}

	//nolint:gosec // go-echarts escapes labels inside its generated option JSON.
	return htmltemplate.HTML(buf.String()), nil
}
