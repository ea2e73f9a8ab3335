/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"math"
	"strconv"
	"time"
)

// RiskTier is one of the four fixed bands over readmission risk.
type RiskTier string

// RiskTier values, ordered from least to most severe.
const (
	TierLow        RiskTier = "low"
	TierBorderline RiskTier = "borderline"
	TierHigh       RiskTier = "high"
	TierCritical   RiskTier = "critical"
)

// Tier colours used by the patient list and risk legend.
const (
	ColorLow        = "#5CB85C"
	ColorBorderline = "#F7D83D"
	ColorHigh       = "#F9A15A"
	ColorCritical   = "#FC4133"
)

// AllTiers lists the tiers in ascending severity.
var AllTiers = []RiskTier{TierLow, TierBorderline, TierHigh, TierCritical}

// TierOf maps a readmission risk onto its tier. Anything that is not
// at most 0.75 (including NaN) is critical, so the mapping is total.
func TierOf(risk float64) RiskTier {
	switch {
	case risk <= 0.25:
		return TierLow
	case risk <= 0.50:
		return TierBorderline
	case risk <= 0.75:
		return TierHigh
	default:
		return TierCritical
	}
}

// Color returns the display colour for the tier.
func (t RiskTier) Color() string {
	switch t {
	case TierLow:
		return ColorLow
	case TierBorderline:
		return ColorBorderline
	case TierHigh:
		return ColorHigh
	default:
		return ColorCritical
	}
}

// Patient is a single risk-scored admission as served by the API.
type Patient struct {
	SubjectID         int64      `json:"subject_id"`
	AdmissionID       int64      `json:"hadm_id"`
	Age               float64    `json:"age"`
	Gender            string     `json:"gender"`
	MaritalStatus     string     `json:"marital_status"`
	Ethnicity         string     `json:"ethnicity"`
	Language          string     `json:"language"`
	Insurance         string     `json:"insurance"`
	AdmitTime         *time.Time `json:"admittime"`
	DischargeTime     *time.Time `json:"dischtime"`
	DateOfBirth       *time.Time `json:"dob"`
	Diagnosis         string     `json:"diagnosis"`
	AdmissionType     string     `json:"admission_type"`
	ComorbidSeverity  float64    `json:"comorbid_severity"`
	ComorbidMortality float64    `json:"comorbid_mortality"`
	ReadmissionRisk   float64    `json:"readmissionRisk"`

	// Display fields, filled in by NewPatient.
	RiskTier    RiskTier `json:"-"`
	RiskPercent string   `json:"-"`
	RiskColor   string   `json:"-"`
}

// NewPatient returns p with its display fields derived from the risk score.
func NewPatient(p Patient) Patient {
	p.RiskTier = TierOf(p.ReadmissionRisk)
	p.RiskPercent = RiskPercent(p.ReadmissionRisk)
	p.RiskColor = p.RiskTier.Color()

	return p
}

// RiskPercent formats a risk score as a whole percentage, rounding up.
func RiskPercent(risk float64) string {
	return strconv.FormatFloat(math.Ceil(risk*100), 'f', 0, 64) + "%"
}
