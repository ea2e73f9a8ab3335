/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"context"
	"errors"
	"fmt"
)

// Source supplies risk-scored patients and reference data. It is
// implemented by the database and by the HTTP API client.
type Source interface {
	FetchPatients(ctx context.Context) ([]Patient, error)
	FetchReferenceData(ctx context.Context, age float64) (ReferenceData, error)
	FetchReadmissionData(ctx context.Context) (ReAdmissionData, error)
}

// LoadList fetches the patients and rebuilds the list view from v.
func LoadList(ctx context.Context, src Source, v ViewState) (ListState, error) {
	patients, err := src.FetchPatients(ctx)
	if err != nil {
		return NewListState(nil), err
	}

	return Restore(patients, v), nil
}

// DetailView is everything the patient detail page shows. A failure is
// kept as a message next to whatever could still be built.
type DetailView struct {
	Patient       *Patient
	Severity      *ChartOptions
	Mortality     *ChartOptions
	Age           *ChartOptions
	AgeBuckets    []AgeBucket
	Err           error
	ErrorMessage  string
	AgeChartError string
}

func (v DetailView) fail(err error) DetailView {
	v.Err = err
	v.ErrorMessage = err.Error()

	return v
}

// LoadDetailView fetches the patients, finds the admission and then, only
// once the patient is known, fetches the reference cohort for its age.
func LoadDetailView(ctx context.Context, src Source, admissionID int64, bucketer AgeBucketer) DetailView {
	var view DetailView

	patients, err := src.FetchPatients(ctx)
	if err != nil {
		return view.fail(err)
	}

	patient, err := FindByAdmission(patients, admissionID)
	if err != nil {
		return view.fail(err)
	}
	view.Patient = &patient

	ref, err := src.FetchReferenceData(ctx, patient.Age)
	if err != nil {
		return view.fail(err)
	}

	severity := SeverityChart(BucketComorbidities(ref.ComorbidSeverities), patient)
	mortality := MortalityChart(BucketComorbidities(ref.ComorbidMortalities), patient)
	view.Severity = &severity
	view.Mortality = &mortality

	buckets, err := bucketer.Buckets(ref.Ages)
	if err != nil {
		view.AgeChartError = err.Error()
		return view
	}

	age := AgeChart(buckets, patient)
	view.Age = &age
	view.AgeBuckets = buckets

	return view
}

// NotFound reports whether the view failed because the admission is unknown.
func (v DetailView) NotFound() bool {
	return errors.Is(v.Err, ErrPatientNotFound)
}

// LoadTrend fetches the readmission series and builds its chart.
func LoadTrend(ctx context.Context, src Source) (ChartOptions, error) {
	data, err := src.FetchReadmissionData(ctx)
	if err != nil {
		return ChartOptions{}, err
	}

	chart, err := ReadmissionTrendChart(data)
	if err != nil {
		return ChartOptions{}, fmt.Errorf("invalid readmission data: %w", err)
	}

	return chart, nil
}
