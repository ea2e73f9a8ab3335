/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"time"

	"github.com/humaidq/riskboard/dashboard"
)

// DischargeAdmission is one row of the hospital admissions export.
type DischargeAdmission struct {
	RowID              int64      `json:"row_id"`
	SubjectID          int64      `json:"subject_id"`
	AdmissionID        int64      `json:"hadm_id"`
	AdmitTime          *time.Time `json:"admittime,omitempty"`
	DischargeTime      *time.Time `json:"dischtime,omitempty"`
	DeathTime          *time.Time `json:"deathtime,omitempty"`
	AdmissionType      string     `json:"admission_type"`
	AdmissionLocation  string     `json:"admission_location"`
	DischargeLocation  string     `json:"discharge_location"`
	Insurance          string     `json:"insurance"`
	Language           string     `json:"language"`
	Religion           string     `json:"religion"`
	MaritalStatus      string     `json:"marital_status"`
	Ethnicity          string     `json:"ethnicity"`
	EDRegTime          *time.Time `json:"edregtime,omitempty"`
	EDOutTime          *time.Time `json:"edouttime,omitempty"`
	Diagnosis          string     `json:"diagnosis"`
	HospitalExpireFlag int64      `json:"hospital_expire_flag"`
	HasIOEventsData    int64      `json:"has_ioevents_data"`
	HasChartEventsData int64      `json:"has_chartevents_data"`
}

// DischargeComorbid is a diagnosis-related group coded against an admission.
type DischargeComorbid struct {
	RowID        int64   `json:"row_id"`
	SubjectID    int64   `json:"subject_id"`
	AdmissionID  int64   `json:"hadm_id"`
	DRGType      string  `json:"drg_type"`
	DRGCode      int64   `json:"drg_code"`
	Description  string  `json:"description"`
	DRGSeverity  float64 `json:"drg_severity"`
	DRGMortality float64 `json:"drg_mortality"`
}

// DischargePatient holds the demographic row of a patient.
type DischargePatient struct {
	RowID      int64      `json:"row_id"`
	SubjectID  int64      `json:"subject_id"`
	Gender     string     `json:"gender"`
	DOB        *time.Time `json:"dob,omitempty"`
	DOD        *time.Time `json:"dod,omitempty"`
	DODHosp    *time.Time `json:"dod_hosp,omitempty"`
	DODSSN     *time.Time `json:"dod_ssn,omitempty"`
	ExpireFlag int64      `json:"expire_flag"`
}

// ProcessedPatient is an admission joined with its demographics, averaged
// comorbidity scores and the upstream readmission risk.
type ProcessedPatient struct {
	AdmissionID     int64      `json:"hadm_id"`
	SubjectID       int64      `json:"subject_id"`
	AdmissionType   string     `json:"admission_type"`
	Diagnosis       string     `json:"diagnosis"`
	Insurance       string     `json:"insurance"`
	Ethnicity       string     `json:"ethnicity"`
	Language        string     `json:"language"`
	MaritalStatus   string     `json:"marital_status"`
	AdmitTime       *time.Time `json:"admittime,omitempty"`
	DischargeTime   *time.Time `json:"dischtime,omitempty"`
	AvgDRGSeverity  float64    `json:"avg_drg_severity"`
	AvgDRGMortality float64    `json:"avg_drg_mortality"`
	Gender          string     `json:"gender"`
	DOB             *time.Time `json:"dob,omitempty"`
	Age             float64    `json:"age"`
	RiskScore       float64    `json:"riskScore"`
}

// ToPatient maps the stored record onto the dashboard wire model.
func (p ProcessedPatient) ToPatient() dashboard.Patient {
	return dashboard.NewPatient(dashboard.Patient{
		SubjectID:         p.SubjectID,
		AdmissionID:       p.AdmissionID,
		Age:               p.Age,
		Gender:            p.Gender,
		MaritalStatus:     p.MaritalStatus,
		Ethnicity:         p.Ethnicity,
		Language:          p.Language,
		Insurance:         p.Insurance,
		AdmitTime:         p.AdmitTime,
		DischargeTime:     p.DischargeTime,
		DateOfBirth:       p.DOB,
		Diagnosis:         p.Diagnosis,
		AdmissionType:     p.AdmissionType,
		ComorbidSeverity:  p.AvgDRGSeverity,
		ComorbidMortality: p.AvgDRGMortality,
		ReadmissionRisk:   p.RiskScore,
	})
}

// ReferenceSample is one member of the reference population.
type ReferenceSample struct {
	Age          float64 `json:"age"`
	AvgSeverity  float64 `json:"avg_severity"`
	AvgMortality float64 `json:"avg_mortality"`
}

// ReadmissionRate is one point of the 30-day readmission series.
type ReadmissionRate struct {
	Date            string  `json:"date"`
	ReadmissionRate float64 `json:"readmissionRate"`
}
