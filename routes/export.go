/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/xuri/excelize/v2"

	"github.com/humaidq/riskboard/dashboard"
)

const (
	exportSheet       = "Patients"
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportTimeLayout  = "2006-01-02 15:04"
	exportRiskColumn  = 11
	exportLastColumn  = "L"
	exportColumnWidth = 16
)

var exportHeaders = []interface{}{
	"Admission ID",
	"Subject ID",
	"Age",
	"Gender",
	"Diagnosis",
	"Admission Type",
	"Insurance",
	"Discharge Time",
	"Comorbid Severity",
	"Comorbid Mortality",
	"Readmission Risk",
	"Risk Tier",
}

func formatExportTime(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.UTC().Format(exportTimeLayout)
}

// buildPatientWorkbook writes patients to a single-sheet workbook, one row
// per patient, with the risk cell coloured by tier.
func buildPatientWorkbook(patients []dashboard.Patient) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetCellStyle(exportSheet, "A1", exportLastColumn+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	if err := f.SetColWidth(exportSheet, "A", exportLastColumn, exportColumnWidth); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	tierStyles := make(map[dashboard.RiskTier]int, len(dashboard.AllTiers))
	for _, tier := range dashboard.AllTiers {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{strings.TrimPrefix(tier.Color(), "#")},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s style: %w", tier, err)
		}

		tierStyles[tier] = style
	}

	for i, p := range patients {
		row := i + 2

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}

		values := []interface{}{
			p.AdmissionID,
			p.SubjectID,
			p.Age,
			p.Gender,
			p.Diagnosis,
			p.AdmissionType,
			p.Insurance,
			formatExportTime(p.DischargeTime),
			p.ComorbidSeverity,
			p.ComorbidMortality,
			p.RiskPercent,
			string(p.RiskTier),
		}

		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}

		riskCell, err := excelize.CoordinatesToCellName(exportRiskColumn, row)
		if err != nil {
			return nil, err
		}

		if err := f.SetCellStyle(exportSheet, riskCell, riskCell, tierStyles[p.RiskTier]); err != nil {
			return nil, fmt.Errorf("failed to style row %d: %w", row, err)
		}
	}

	return f, nil
}

// ExportPatients downloads the current filtered and sorted list as XLSX.
func ExportPatients(c flamego.Context, s session.Session, src dashboard.Source) {
	list, err := dashboard.LoadList(c.Request().Context(), src, loadViewState(s))
	if err != nil {
		logger.Error("Failed to load patients for export", "error", err)
		http.Error(c.ResponseWriter(), errDataUnavailable.Error(), http.StatusBadGateway)
		return
	}

	f, err := buildPatientWorkbook(list.Current())
	if err != nil {
		logger.Error("Failed to build patient workbook", "error", err)
		http.Error(c.ResponseWriter(), "failed to export patients", http.StatusInternalServerError)
		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	filename := "patients-" + time.Now().UTC().Format("20060102") + ".xlsx"

	header := c.ResponseWriter().Header()
	header.Set("Content-Type", xlsxContentType)
	header.Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if _, err := f.WriteTo(c.ResponseWriter()); err != nil {
		logger.Warn("Failed to write workbook", "error", err)
	}
}
