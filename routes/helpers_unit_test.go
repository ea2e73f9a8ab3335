// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/riskboard/dashboard"
	"github.com/humaidq/riskboard/db"
	"github.com/humaidq/riskboard/templates"
)

var errTestBoom = errors.New("boom")

type testSession struct {
	id    string
	data  map[interface{}]interface{}
	flash interface{}
}

func newTestSession() *testSession {
	return &testSession{
		id:   "test-session",
		data: make(map[interface{}]interface{}),
	}
}

func (s *testSession) ID() string {
	return s.id
}

func (s *testSession) RegenerateID(http.ResponseWriter, *http.Request) error {
	return nil
}

func (s *testSession) Get(key interface{}) interface{} {
	return s.data[key]
}

func (s *testSession) Set(key, val interface{}) {
	s.data[key] = val
}

func (s *testSession) SetFlash(val interface{}) {
	s.flash = val
}

func (s *testSession) Delete(key interface{}) {
	delete(s.data, key)
}

func (s *testSession) Flush() {
	s.data = make(map[interface{}]interface{})
}

func (s *testSession) Encode() ([]byte, error) {
	return nil, nil
}

func (s *testSession) HasChanged() bool {
	return true
}

func (s *testSession) flashMessage(t *testing.T) FlashMessage {
	t.Helper()

	msg, ok := s.flash.(FlashMessage)
	if !ok {
		t.Fatalf("expected flash message, got %#v", s.flash)
	}

	return msg
}

// fakeStore serves canned data and counts fetches.
type fakeStore struct {
	patients    []dashboard.Patient
	reference   dashboard.ReferenceData
	readmission dashboard.ReAdmissionData
	admissions  []db.DischargeAdmission
	err         error
	refErr      error
	lastAge     float64
}

func (f *fakeStore) FetchPatients(context.Context) ([]dashboard.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.patients, nil
}

func (f *fakeStore) FetchReferenceData(_ context.Context, age float64) (dashboard.ReferenceData, error) {
	f.lastAge = age
	if f.refErr != nil {
		return dashboard.ReferenceData{}, f.refErr
	}

	return f.reference, nil
}

func (f *fakeStore) FetchReadmissionData(context.Context) (dashboard.ReAdmissionData, error) {
	if f.err != nil {
		return dashboard.ReAdmissionData{}, f.err
	}

	return f.readmission, nil
}

func (f *fakeStore) DischargePatients(context.Context) ([]db.DischargePatient, error) {
	return []db.DischargePatient{{RowID: 1, SubjectID: 249, Gender: "F"}}, f.err
}

func (f *fakeStore) DischargeAdmissions(context.Context) ([]db.DischargeAdmission, error) {
	return f.admissions, f.err
}

func (f *fakeStore) DischargeComorbids(context.Context) ([]db.DischargeComorbid, error) {
	return []db.DischargeComorbid{}, f.err
}

func makePatients(n int) []dashboard.Patient {
	patients := make([]dashboard.Patient, 0, n)
	for i := 0; i < n; i++ {
		discharged := time.Date(2101, time.January, 1+i%28, 12, 0, 0, 0, time.UTC)
		admitted := discharged.Add(-72 * time.Hour)
		patients = append(patients, dashboard.NewPatient(dashboard.Patient{
			SubjectID:         int64(1000 + i),
			AdmissionID:       int64(100000 + i),
			Age:               float64(20 + i),
			Gender:            "F",
			MaritalStatus:     "MARRIED",
			Language:          "ENGL",
			AdmitTime:         &admitted,
			Diagnosis:         "SEPSIS",
			DischargeTime:     &discharged,
			ComorbidSeverity:  float64(i%5) + 0.5,
			ComorbidMortality: float64(i%4) + 0.25,
			ReadmissionRisk:   float64(i%100) / 100,
		}))
	}

	return patients
}

func newTestStore(n int) *fakeStore {
	return &fakeStore{
		patients: makePatients(n),
		reference: dashboard.ReferenceData{
			Ages:                []float64{20, 24, 31, 33, 45},
			ComorbidSeverities:  []float64{0.2, 1.5, 2.5, 2.7, 5},
			ComorbidMortalities: []float64{0.1, 0.3, 1.1, 3.2, 3.9},
		},
		readmission: dashboard.ReAdmissionData{
			Dates:            []string{"2016-01", "2016-02", "2016-03"},
			ReadmissionRates: []float64{0.12, 0.15, 0.11},
		},
	}
}

// newTestApp wires the handlers the way the start command does, minus
// CSRF validation and the real session store.
func newTestApp(t *testing.T, s session.Session, store *fakeStore) *flamego.Flame {
	t.Helper()

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	f := flamego.New()
	f.Use(template.Templater(template.Options{FileSystem: fs}))
	f.Use(func(c flamego.Context) {
		c.MapTo(s, (*session.Session)(nil))
		c.MapTo(store, (*dashboard.Source)(nil))
		c.MapTo(store, (*Store)(nil))
		c.Next()
	})

	f.Get("/", PatientList)
	f.Post("/filters", ApplyFilterForm)
	f.Post("/filters/clear", ClearFilterForm)
	f.Post("/sort/{column}", ToggleSortColumn)
	f.Get("/page/{n}", GoToPage)
	f.Get("/details/{admissionId}", PatientDetails)
	f.Get("/readmission-rates", ReadmissionRates)
	f.Get("/patients/export.xlsx", ExportPatients)

	f.Group("/api", func() {
		f.Get("/", APIIndex)
		f.Get("/processed-patients", ProcessedPatients)
		f.Get("/discharge-patients", DischargePatients)
		f.Get("/discharge-admissions", DischargeAdmissions)
		f.Get("/discharge-comorbids", DischargeComorbids)
		f.Get("/ages-distribution", AgesDistribution)
		f.Get("/comorbid-severity-distribution", ComorbidSeverityDistribution)
		f.Get("/comorbid-mortality-distribution", ComorbidMortalityDistribution)
		f.Get("/patients/{admissionId}/charts", PatientCharts)
		f.Options("/{path: **}", func() {})
	}, APIHeaders())

	f.Group("/v1", func() {
		f.Get("/get-reference-data", ReferenceData)
		f.Get("/get-readmission-data", ReadmissionData)
	}, APIHeaders())

	return f
}

func performGET(t *testing.T, f *flamego.Flame, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	return rec
}

func performFormPOST(t *testing.T, f *flamego.Flame, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	return rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	if got := rec.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}
