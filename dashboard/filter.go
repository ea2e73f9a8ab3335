/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"fmt"
	"time"
)

// RiskFilter selects a risk tier, or all of them.
type RiskFilter string

// RiskAll disables the risk tier stage.
const RiskAll RiskFilter = "all"

// Default age slider bounds.
const (
	DefaultAgeMin = 0
	DefaultAgeMax = 120
)

// ParseRiskFilter validates a risk level selector. An empty string is
// treated as RiskAll.
func ParseRiskFilter(s string) (RiskFilter, error) {
	switch s {
	case "", string(RiskAll):
		return RiskAll, nil
	}

	for _, tier := range AllTiers {
		if s == string(tier) {
			return RiskFilter(s), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownRiskFilter, s)
}

// FilterState holds the conjunctive list filters.
type FilterState struct {
	AgeMin        float64
	AgeMax        float64
	Risk          RiskFilter
	DischargeFrom *time.Time
	DischargeTo   *time.Time
}

// DefaultFilters returns the filters that match every patient aged 0 to 120.
func DefaultFilters() FilterState {
	return FilterState{
		AgeMin: DefaultAgeMin,
		AgeMax: DefaultAgeMax,
		Risk:   RiskAll,
	}
}

// IsDefault reports whether f applies no constraint beyond the default age bounds.
func (f FilterState) IsDefault() bool {
	return f.AgeMin == DefaultAgeMin && f.AgeMax == DefaultAgeMax &&
		(f.Risk == RiskAll || f.Risk == "") &&
		f.DischargeFrom == nil && f.DischargeTo == nil
}

type predicate func(Patient) bool

// stages returns the active predicates in evaluation order:
// age, risk tier, discharge from, discharge to.
func (f FilterState) stages() []predicate {
	stages := []predicate{
		func(p Patient) bool { return p.Age >= f.AgeMin && p.Age <= f.AgeMax },
	}

	if f.Risk != "" && f.Risk != RiskAll {
		tier := RiskTier(f.Risk)
		stages = append(stages, func(p Patient) bool { return TierOf(p.ReadmissionRisk) == tier })
	}

	if f.DischargeFrom != nil {
		from := *f.DischargeFrom
		stages = append(stages, func(p Patient) bool {
			return p.DischargeTime != nil && !p.DischargeTime.Before(from)
		})
	}

	if f.DischargeTo != nil {
		to := *f.DischargeTo
		stages = append(stages, func(p Patient) bool {
			return p.DischargeTime != nil && !p.DischargeTime.After(to)
		})
	}

	return stages
}

// Matches reports whether p passes every stage of f.
func (f FilterState) Matches(p Patient) bool {
	for _, stage := range f.stages() {
		if !stage(p) {
			return false
		}
	}

	return true
}

// ApplyFilters derives a new slice holding the patients of original that
// pass f, in their original order. original is never modified.
func ApplyFilters(original []Patient, f FilterState) []Patient {
	stages := f.stages()
	filtered := make([]Patient, 0, len(original))

next:
	for _, p := range original {
		for _, stage := range stages {
			if !stage(p) {
				continue next
			}
		}
		filtered = append(filtered, p)
	}

	return filtered
}
