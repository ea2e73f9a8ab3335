/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/flamego/flamego"

	"github.com/humaidq/riskboard/dashboard"
	"github.com/humaidq/riskboard/db"
)

// Store is the local data behind the JSON API.
type Store interface {
	dashboard.Source
	DischargePatients(ctx context.Context) ([]db.DischargePatient, error)
	DischargeAdmissions(ctx context.Context) ([]db.DischargeAdmission, error)
	DischargeComorbids(ctx context.Context) ([]db.DischargeComorbid, error)
}

var comorbidBandNames = []string{"One", "Two", "Three", "Four", "Five"}

func writeJSON(c flamego.Context, status int, v interface{}) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(v); err != nil {
		logger.Warn("Failed to encode JSON response", "path", c.Request().URL.Path, "error", err)
	}
}

func writeJSONError(c flamego.Context, status int, message string) {
	writeJSON(c, status, map[string]string{"error": message})
}

// APIIndex describes the available resources.
func APIIndex(c flamego.Context) {
	writeJSON(c, http.StatusOK, map[string]interface{}{
		"message": "Readmission Risk Patient Select api is running.",
		"availableResources": []string{
			"/discharge-admissions GET discharge-admission[]",
			"/discharge-comorbids GET discharge-comorbid[]",
			"/discharge-patients GET discharge-patient[]",
			"/processed-patients GET processed-patient[]",
			"/ages-distribution GET AgeDistribution[]",
			"/comorbid-severity-distribution GET severityDistributions[]",
			"/comorbid-mortality-distribution GET mortalityDistributions[]",
			"/patients/{admissionId}/charts GET PatientCharts",
		},
	})
}

// ProcessedPatients lists the risk-scored patients.
func ProcessedPatients(c flamego.Context, store Store) {
	patients, err := store.FetchPatients(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list processed patients", "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to load processed patients")
		return
	}

	writeJSON(c, http.StatusOK, map[string]interface{}{
		"count":             len(patients),
		"processedPatients": patients,
	})
}

// DischargePatients lists the raw patient demographics.
func DischargePatients(c flamego.Context, store Store) {
	patients, err := store.DischargePatients(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list discharge patients", "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to load discharge patients")
		return
	}

	writeJSON(c, http.StatusOK, map[string]interface{}{
		"count":             len(patients),
		"dischargePatients": patients,
	})
}

// DischargeAdmissions lists the raw admissions.
func DischargeAdmissions(c flamego.Context, store Store) {
	admissions, err := store.DischargeAdmissions(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list discharge admissions", "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to load discharge admissions")
		return
	}

	writeJSON(c, http.StatusOK, map[string]interface{}{
		"count":      len(admissions),
		"admissions": admissions,
	})
}

// DischargeComorbids lists the raw comorbidity codes.
func DischargeComorbids(c flamego.Context, store Store) {
	comorbids, err := store.DischargeComorbids(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list discharge comorbids", "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to load discharge comorbids")
		return
	}

	writeJSON(c, http.StatusOK, map[string]interface{}{
		"count":     len(comorbids),
		"comorbids": comorbids,
	})
}

// AgesDistribution buckets the processed patients by decade of age.
func AgesDistribution(c flamego.Context, store Store) {
	patients, err := store.FetchPatients(c.Request().Context())
	if err != nil {
		logger.Error("Failed to load patients for age distribution", "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to load processed patients")
		return
	}

	ages := make([]float64, 0, len(patients))
	for _, p := range patients {
		ages = append(ages, p.Age)
	}

	buckets := dashboard.BucketAgesByDecade(ages)

	body := map[string]interface{}{}
	members := map[string][]float64{}

	for i, label := range dashboard.DecadeLabels {
		body[label+"Count"] = len(buckets[i])
		members[label] = buckets[i]
	}

	body["ageDistributions"] = members

	writeJSON(c, http.StatusOK, body)
}

// ComorbidSeverityDistribution buckets the patients' comorbidity severity.
func ComorbidSeverityDistribution(c flamego.Context, store Store) {
	comorbidDistribution(c, store, "severityDistributions", func(p dashboard.Patient) float64 {
		return p.ComorbidSeverity
	})
}

// ComorbidMortalityDistribution buckets the patients' comorbidity mortality.
func ComorbidMortalityDistribution(c flamego.Context, store Store) {
	comorbidDistribution(c, store, "mortalityDistributions", func(p dashboard.Patient) float64 {
		return p.ComorbidMortality
	})
}

func comorbidDistribution(c flamego.Context, store Store, key string, value func(dashboard.Patient) float64) {
	patients, err := store.FetchPatients(c.Request().Context())
	if err != nil {
		logger.Error("Failed to load patients for comorbid distribution", "key", key, "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to load processed patients")
		return
	}

	values := make([]float64, 0, len(patients))
	for _, p := range patients {
		values = append(values, value(p))
	}

	writeJSON(c, http.StatusOK, comorbidDistributionBody(dashboard.BucketComorbidities(values), key))
}

func comorbidDistributionBody(d dashboard.ComorbidDistribution, key string) map[string]interface{} {
	groups := make([][]float64, 0, len(comorbidBandNames))
	for _, band := range d.Bands {
		groups = append(groups, band.Members)
	}

	overflow := d.Overflow
	if overflow == nil {
		overflow = []float64{}
	}
	groups = append(groups, overflow)

	body := map[string]interface{}{}
	members := map[string][]float64{}

	for i, name := range comorbidBandNames {
		body[name+"Count"] = len(groups[i])
		members[name] = groups[i]
	}

	body[key] = members

	return body
}

// ReferenceData returns the reference cohort for the age in the ages
// query parameter.
func ReferenceData(c flamego.Context, store Store) {
	raw := strings.TrimSpace(c.Query("ages"))

	age, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, errInvalidAge.Error())
		return
	}

	data, err := store.FetchReferenceData(c.Request().Context(), age)
	if err != nil {
		logger.Error("Failed to load reference data", "age", age, "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to load reference data")
		return
	}

	writeJSON(c, http.StatusOK, data)
}

// ReadmissionData returns the 30-day readmission series.
func ReadmissionData(c flamego.Context, store Store) {
	data, err := store.FetchReadmissionData(c.Request().Context())
	if err != nil {
		logger.Error("Failed to load readmission data", "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to load readmission data")
		return
	}

	writeJSON(c, http.StatusOK, data)
}

type patientChartsResponse struct {
	Patient       *dashboard.Patient      `json:"patient"`
	Severity      *dashboard.ChartOptions `json:"severity"`
	Mortality     *dashboard.ChartOptions `json:"mortality"`
	Age           *dashboard.ChartOptions `json:"age"`
	AgeChartError string                  `json:"ageChartError,omitempty"`
}

// PatientCharts returns the three distribution charts of an admission.
func PatientCharts(c flamego.Context, src dashboard.Source) {
	admissionID, err := parseAdmissionID(c.Param("admissionId"))
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	view := dashboard.LoadDetailView(c.Request().Context(), src, admissionID, dashboard.NewAgeBucketer())

	switch {
	case view.NotFound():
		writeJSONError(c, http.StatusNotFound, view.ErrorMessage)
		return
	case view.Err != nil:
		logger.Error("Failed to build patient charts", "admission_id", admissionID, "error", view.Err)
		writeJSONError(c, http.StatusBadGateway, view.ErrorMessage)
		return
	}

	writeJSON(c, http.StatusOK, patientChartsResponse{
		Patient:       view.Patient,
		Severity:      view.Severity,
		Mortality:     view.Mortality,
		Age:           view.Age,
		AgeChartError: view.AgeChartError,
	})
}

func parseAdmissionID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidAdmissionID
	}

	return id, nil
}
