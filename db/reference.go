/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"math"

	"github.com/humaidq/riskboard/dashboard"
)

// cohortBounds returns the half-open age range of the reference cohort a
// patient is compared against. The patient's age is truncated to whole
// years first. A nil upper bound means unbounded.
func cohortBounds(age float64) (float64, *float64) {
	years := math.Trunc(age)

	switch {
	case years >= 1 && years < 25:
		return 1, ptr(25)
	case years >= 25 && years < 50:
		return 25, ptr(50)
	default:
		return 50, nil
	}
}

func ptr(f float64) *float64 {
	return &f
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ListReferenceCohort returns the reference samples in the cohort of the
// given patient age.
func ListReferenceCohort(ctx context.Context, age float64) ([]ReferenceSample, error) {
	lower, upper := cohortBounds(age)

	return queryDocuments[ReferenceSample](ctx, CollectionReferencePopulation,
		`SELECT body FROM documents
		WHERE collection = $1
			AND (body->>'age')::float8 >= $2
			AND ($3::float8 IS NULL OR (body->>'age')::float8 < $3)
		ORDER BY seq`,
		string(CollectionReferencePopulation), lower, upper,
	)
}

// referenceData splits the cohort into the three series served to the
// detail view, rounded to two decimals.
func referenceData(samples []ReferenceSample) dashboard.ReferenceData {
	data := dashboard.ReferenceData{
		Ages:                make([]float64, 0, len(samples)),
		ComorbidSeverities:  make([]float64, 0, len(samples)),
		ComorbidMortalities: make([]float64, 0, len(samples)),
	}

	for _, s := range samples {
		data.Ages = append(data.Ages, round2(s.Age))
		data.ComorbidSeverities = append(data.ComorbidSeverities, round2(s.AvgSeverity))
		data.ComorbidMortalities = append(data.ComorbidMortalities, round2(s.AvgMortality))
	}

	return data
}

func readmissionData(rates []ReadmissionRate) dashboard.ReAdmissionData {
	data := dashboard.ReAdmissionData{
		Dates:            make([]string, 0, len(rates)),
		ReadmissionRates: make([]float64, 0, len(rates)),
	}

	for _, r := range rates {
		data.Dates = append(data.Dates, r.Date)
		data.ReadmissionRates = append(data.ReadmissionRates, r.ReadmissionRate)
	}

	return data
}
