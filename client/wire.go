/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/humaidq/riskboard/dashboard"
	"github.com/humaidq/riskboard/utils"
)

// wirePatient is the single mapping from API records to dashboard
// patients. The canonical contract is snake_case plus readmissionRisk;
// keys are matched case-insensitively so the upper-case variant decodes
// too, and the stored names avg_drg_* and riskScore are accepted.
type wirePatient struct {
	fields map[string]json.RawMessage
}

func (w *wirePatient) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	w.fields = make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		w.fields[strings.ToLower(k)] = v
	}

	return nil
}

func (w wirePatient) lookup(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		v, ok := w.fields[k]
		if !ok {
			continue
		}

		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, false
		}

		return v, true
	}

	return nil, false
}

// scalar returns the value as text, unquoting JSON strings.
func (w wirePatient) scalar(keys ...string) (string, bool) {
	v, ok := w.lookup(keys...)
	if !ok {
		return "", false
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != "" && s != utils.NullValue
	}

	return string(bytes.TrimSpace(v)), true
}

func (w wirePatient) str(keys ...string) string {
	s, _ := w.scalar(keys...)
	return s
}

func (w wirePatient) float(keys ...string) (float64, error) {
	s, ok := w.scalar(keys...)
	if !ok {
		return 0, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidFieldValue, keys[0], s)
	}

	return f, nil
}

func (w wirePatient) int64(keys ...string) (int64, error) {
	f, err := w.float(keys...)
	if err != nil {
		return 0, err
	}

	return int64(f), nil
}

func (w wirePatient) time(keys ...string) (*time.Time, error) {
	s, ok := w.scalar(keys...)
	if !ok {
		return nil, nil
	}

	t, err := utils.ParseTime(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFieldValue, keys[0], err)
	}

	return &t, nil
}

func (w wirePatient) patient() (dashboard.Patient, error) {
	var (
		p   dashboard.Patient
		err error
	)

	if p.SubjectID, err = w.int64("subject_id"); err != nil {
		return p, err
	}
	if p.AdmissionID, err = w.int64("hadm_id"); err != nil {
		return p, err
	}
	if p.Age, err = w.float("age"); err != nil {
		return p, err
	}
	if p.AdmitTime, err = w.time("admittime"); err != nil {
		return p, err
	}
	if p.DischargeTime, err = w.time("dischtime"); err != nil {
		return p, err
	}
	if p.DateOfBirth, err = w.time("dob"); err != nil {
		return p, err
	}
	if p.ComorbidSeverity, err = w.float("comorbid_severity", "avg_drg_severity"); err != nil {
		return p, err
	}
	if p.ComorbidMortality, err = w.float("comorbid_mortality", "avg_drg_mortality"); err != nil {
		return p, err
	}
	if p.ReadmissionRisk, err = w.float("readmissionrisk", "readmission_risk", "riskscore"); err != nil {
		return p, err
	}

	p.Gender = w.str("gender")
	p.MaritalStatus = w.str("marital_status")
	p.Ethnicity = w.str("ethnicity")
	p.Language = w.str("language")
	p.Insurance = w.str("insurance")
	p.Diagnosis = w.str("diagnosis")
	p.AdmissionType = w.str("admission_type")

	return dashboard.NewPatient(p), nil
}
