// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"testing"
	"time"
)

func makePatients(n int) []Patient {
	patients := make([]Patient, 0, n)
	for i := 0; i < n; i++ {
		patients = append(patients, NewPatient(Patient{
			SubjectID:       int64(1000 + i),
			AdmissionID:     int64(100000 + i),
			Age:             float64(20 + i),
			ReadmissionRisk: float64(i%100) / 100,
		}))
	}

	return patients
}

func admissionIDs(patients []Patient) []int64 {
	ids := make([]int64, 0, len(patients))
	for _, p := range patients {
		ids = append(ids, p.AdmissionID)
	}

	return ids
}

func assertIDs(t *testing.T, got []Patient, want ...int64) {
	t.Helper()

	ids := admissionIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("expected admissions %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected admissions %v, got %v", want, ids)
		}
	}
}

func date(t *testing.T, s string) *time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}

	return &d
}
