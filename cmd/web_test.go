// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/humaidq/riskboard/dashboard"
	"github.com/humaidq/riskboard/db"
)

type stubStore struct{}

func (stubStore) FetchPatients(context.Context) ([]dashboard.Patient, error) {
	return []dashboard.Patient{
		dashboard.NewPatient(dashboard.Patient{SubjectID: 249, AdmissionID: 116935, Age: 74.5, ReadmissionRisk: 0.81}),
	}, nil
}

func (stubStore) FetchReferenceData(context.Context, float64) (dashboard.ReferenceData, error) {
	return dashboard.ReferenceData{Ages: []float64{60, 70, 80}}, nil
}

func (stubStore) FetchReadmissionData(context.Context) (dashboard.ReAdmissionData, error) {
	return dashboard.ReAdmissionData{Dates: []string{"2016-01"}, ReadmissionRates: []float64{0.1}}, nil
}

func (stubStore) DischargePatients(context.Context) ([]db.DischargePatient, error) {
	return nil, nil
}

func (stubStore) DischargeAdmissions(context.Context) ([]db.DischargeAdmission, error) {
	return nil, nil
}

func (stubStore) DischargeComorbids(context.Context) ([]db.DischargeComorbid, error) {
	return nil, nil
}

func serve(t *testing.T, cfg serverConfig, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	f, err := newServer(cfg)
	if err != nil {
		t.Fatalf("newServer returned error: %v", err)
	}

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	return rec
}

func TestNewServerRendersPatientList(t *testing.T) {
	t.Parallel()

	rec := serve(t, serverConfig{source: stubStore{}}, http.MethodGet, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	if !strings.Contains(rec.Body.String(), "/details/116935") {
		t.Fatal("expected patient row in list")
	}

	if got := rec.Header().Get("Cache-Control"); !strings.Contains(got, "no-store") {
		t.Fatalf("expected no-store cache header, got %q", got)
	}

	if !strings.Contains(rec.Body.String(), `name="_csrf" value="`) {
		t.Fatal("expected csrf token field")
	}
}

func TestNewServerRejectsPostWithoutCSRFToken(t *testing.T) {
	t.Parallel()

	rec := serve(t, serverConfig{source: stubStore{}}, http.MethodPost, "/sort/age")

	if rec.Code < http.StatusBadRequest {
		t.Fatalf("expected request without token to be rejected, got %d", rec.Code)
	}
}

func TestNewServerMountsAPIOnlyWithStore(t *testing.T) {
	t.Parallel()

	rec := serve(t, serverConfig{source: stubStore{}}, http.MethodGet, "/api/processed-patients")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d without store, got %d", http.StatusNotFound, rec.Code)
	}

	store := stubStore{}
	rec = serve(t, serverConfig{source: store, store: store}, http.MethodGet, "/api/processed-patients")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d with store, got %d", http.StatusOK, rec.Code)
	}

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header, got %q", got)
	}
}

func TestNewServerServesStaticFiles(t *testing.T) {
	t.Parallel()

	rec := serve(t, serverConfig{source: stubStore{}}, http.MethodGet, "/style.css")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestNewServerNotFoundHasNoTemplateBody(t *testing.T) {
	t.Parallel()

	rec := serve(t, serverConfig{source: stubStore{}}, http.MethodGet, "/does-not-exist")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	if strings.Contains(rec.Body.String(), "<html") {
		t.Fatalf("expected plain 404 body, got %q", rec.Body.String())
	}
}
