// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"slices"
	"testing"
)

func loadFixtureData(t *testing.T) []ImportResult {
	t.Helper()

	dir := t.TempDir()
	writeSampleFile(t, dir, "processed-data.psv", processedSample)
	writeSampleFile(t, dir, "app-reference-data.csv", referenceSample)
	writeSampleFile(t, dir, "app-readmission-data.csv", readmissionSample)

	results, err := LoadSampleData(testContext(), dir, false)
	if err != nil {
		t.Fatalf("LoadSampleData failed: %v", err)
	}

	return results
}

func TestLoadSampleDataIntegration(t *testing.T) {
	resetDatabase(t)

	results := loadFixtureData(t)

	byCollection := map[Collection]ImportResult{}
	for _, r := range results {
		byCollection[r.Collection] = r
	}

	processed := byCollection[CollectionProcessedPatients]
	if processed.Loaded != 2 || processed.Malformed != 1 {
		t.Fatalf("unexpected processed result: %+v", processed)
	}
	if !byCollection[CollectionAdmissions].Skipped {
		t.Fatalf("expected missing admissions file to be skipped")
	}

	// A second run leaves populated collections alone.
	again := loadFixtureData(t)
	for _, r := range again {
		if r.Loaded != 0 {
			t.Fatalf("expected no documents on second import, got %+v", r)
		}
	}

	count, err := CountDocuments(testContext(), CollectionProcessedPatients)
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 processed patients, got %d", count)
	}
}

func TestStoreFetchesIntegration(t *testing.T) {
	resetDatabase(t)
	loadFixtureData(t)

	store := NewStore()
	ctx := testContext()

	patients, err := store.FetchPatients(ctx)
	if err != nil {
		t.Fatalf("FetchPatients failed: %v", err)
	}
	if len(patients) != 2 || patients[0].AdmissionID != 100001 {
		t.Fatalf("unexpected patients: %+v", patients)
	}
	if patients[0].RiskColor == "" {
		t.Fatalf("expected derived display fields to be set")
	}

	young, err := store.FetchReferenceData(ctx, 12)
	if err != nil {
		t.Fatalf("FetchReferenceData failed: %v", err)
	}
	if !slices.Equal(young.Ages, []float64{12.35}) {
		t.Fatalf("unexpected young cohort: %v", young.Ages)
	}

	middle, err := store.FetchReferenceData(ctx, 40.2)
	if err != nil {
		t.Fatalf("FetchReferenceData failed: %v", err)
	}
	if !slices.Equal(middle.Ages, []float64{30, 49.99}) {
		t.Fatalf("unexpected middle cohort: %v", middle.Ages)
	}

	old, err := store.FetchReferenceData(ctx, 76.5)
	if err != nil {
		t.Fatalf("FetchReferenceData failed: %v", err)
	}
	if !slices.Equal(old.Ages, []float64{50, 88.12}) {
		t.Fatalf("unexpected senior cohort: %v", old.Ages)
	}

	trend, err := store.FetchReadmissionData(ctx)
	if err != nil {
		t.Fatalf("FetchReadmissionData failed: %v", err)
	}
	if len(trend.Dates) != 2 || trend.Validate() != nil {
		t.Fatalf("unexpected trend: %+v", trend)
	}
}

func TestDeleteAllDataIntegration(t *testing.T) {
	resetDatabase(t)
	loadFixtureData(t)

	if err := DeleteAllData(testContext()); err != nil {
		t.Fatalf("DeleteAllData failed: %v", err)
	}

	for _, coll := range Collections {
		count, err := CountDocuments(testContext(), coll)
		if err != nil {
			t.Fatalf("CountDocuments failed: %v", err)
		}
		if count != 0 {
			t.Fatalf("expected %s to be empty, got %d", coll, count)
		}
	}
}

func TestInsertDocumentsUnknownCollection(t *testing.T) {
	requireDatabase(t)

	_, err := InsertDocuments(testContext(), Collection("nope"), []int{1})
	if !errors.Is(err, ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
}
