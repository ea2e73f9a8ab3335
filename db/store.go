/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"

	"github.com/humaidq/riskboard/dashboard"
)

// Store serves the dashboard and the JSON API from the local database.
type Store struct{}

var _ dashboard.Source = (*Store)(nil)

// NewStore returns a Store backed by the package connection pool.
func NewStore() *Store {
	return &Store{}
}

// FetchPatients returns every processed patient as a dashboard patient.
func (s *Store) FetchPatients(ctx context.Context) ([]dashboard.Patient, error) {
	processed, err := ListDocuments[ProcessedPatient](ctx, CollectionProcessedPatients)
	if err != nil {
		return nil, err
	}

	patients := make([]dashboard.Patient, 0, len(processed))
	for _, p := range processed {
		patients = append(patients, p.ToPatient())
	}

	return patients, nil
}

// FetchReferenceData returns the reference cohort for a patient age.
func (s *Store) FetchReferenceData(ctx context.Context, age float64) (dashboard.ReferenceData, error) {
	samples, err := ListReferenceCohort(ctx, age)
	if err != nil {
		return dashboard.ReferenceData{}, err
	}

	return referenceData(samples), nil
}

// FetchReadmissionData returns the stored 30-day readmission series.
func (s *Store) FetchReadmissionData(ctx context.Context) (dashboard.ReAdmissionData, error) {
	rates, err := ListDocuments[ReadmissionRate](ctx, CollectionReadmissionRates)
	if err != nil {
		return dashboard.ReAdmissionData{}, err
	}

	return readmissionData(rates), nil
}

// DischargePatients returns the raw patient demographics.
func (s *Store) DischargePatients(ctx context.Context) ([]DischargePatient, error) {
	return ListDocuments[DischargePatient](ctx, CollectionDischargePatients)
}

// DischargeAdmissions returns the raw admissions.
func (s *Store) DischargeAdmissions(ctx context.Context) ([]DischargeAdmission, error) {
	return ListDocuments[DischargeAdmission](ctx, CollectionAdmissions)
}

// DischargeComorbids returns the raw comorbidity codes.
func (s *Store) DischargeComorbids(ctx context.Context) ([]DischargeComorbid, error) {
	return ListDocuments[DischargeComorbid](ctx, CollectionComorbids)
}
