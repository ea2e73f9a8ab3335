/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/flamego/session"

	"github.com/humaidq/riskboard/dashboard"
)

const viewStateKey = "patient_list_view"

const dateInputLayout = "2006-01-02"

func init() {
	gob.Register(dashboard.ViewState{})
}

func loadViewState(s session.Session) dashboard.ViewState {
	v, ok := s.Get(viewStateKey).(dashboard.ViewState)
	if !ok {
		return dashboard.ViewState{}
	}

	return v
}

func saveViewState(s session.Session, v dashboard.ViewState) {
	s.Set(viewStateKey, v)
}

var filterKeys = []string{"age_min", "age_max", "risk", "discharge_from", "discharge_to"}

func hasFilterValues(values url.Values) bool {
	for _, k := range filterKeys {
		if values.Has(k) {
			return true
		}
	}

	return false
}

// parseFilterValues reads a FilterState from form or query values. Missing
// fields fall back to the defaults.
func parseFilterValues(values url.Values) (dashboard.FilterState, error) {
	f := dashboard.DefaultFilters()

	var err error

	if f.AgeMin, err = parseAge(values.Get("age_min"), dashboard.DefaultAgeMin); err != nil {
		return f, err
	}
	if f.AgeMax, err = parseAge(values.Get("age_max"), dashboard.DefaultAgeMax); err != nil {
		return f, err
	}
	if f.AgeMin > f.AgeMax {
		return f, errInvalidAgeRange
	}

	if f.Risk, err = dashboard.ParseRiskFilter(strings.TrimSpace(values.Get("risk"))); err != nil {
		return f, err
	}

	if f.DischargeFrom, err = parseDate(values.Get("discharge_from"), false); err != nil {
		return f, err
	}
	if f.DischargeTo, err = parseDate(values.Get("discharge_to"), true); err != nil {
		return f, err
	}
	if f.DischargeFrom != nil && f.DischargeTo != nil && f.DischargeFrom.After(*f.DischargeTo) {
		return f, errInvalidDateRange
	}

	return f, nil
}

func parseAge(raw string, fallback float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	age, err := strconv.ParseFloat(raw, 64)
	if err != nil || age < 0 {
		return 0, errInvalidAge
	}

	return age, nil
}

// parseDate reads a date input. An upper bound covers the whole day.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(dateInputLayout, raw)
	if err != nil {
		return nil, errInvalidDate
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}

	return &t, nil
}

func formatDateInput(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(dateInputLayout)
}
