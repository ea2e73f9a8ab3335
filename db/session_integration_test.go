// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"encoding/gob"
	"net/http"
	"testing"
	"time"

	"github.com/flamego/session"

	"github.com/humaidq/riskboard/dashboard"
)

func init() {
	gob.Register(dashboard.ViewState{})
}

func newTestSessionStore(t *testing.T, lifetime time.Duration) *PostgresSessionStore {
	t.Helper()

	store, err := PostgresSessionIniter()(testContext(), PostgresSessionConfig{Lifetime: lifetime})
	if err != nil {
		t.Fatalf("PostgresSessionIniter failed: %v", err)
	}

	return store.(*PostgresSessionStore)
}

func TestPostgresSessionStoreLifecycle(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	pgStore := newTestSessionStore(t, time.Hour)
	noopWriter := func(_ http.ResponseWriter, _ *http.Request, _ string) {}

	view := dashboard.ViewState{
		Filters: dashboard.FilterState{AgeMin: 40, AgeMax: 80, Risk: dashboard.RiskFilter(dashboard.TierHigh)},
		Sort:    dashboard.SortState{Active: dashboard.SortRisk, Risk: dashboard.Descending},
		Page:    2,
	}

	sess := session.NewBaseSession("sess1", session.GobEncoder, noopWriter)
	sess.Set("patient_list_view", view)

	if err := pgStore.Save(ctx, sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !pgStore.Exist(ctx, "sess1") {
		t.Fatalf("expected session to exist")
	}

	readSess, err := pgStore.Read(ctx, "sess1")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	got, ok := readSess.Get("patient_list_view").(dashboard.ViewState)
	if !ok {
		t.Fatalf("expected view state, got %#v", readSess.Get("patient_list_view"))
	}
	if got != view {
		t.Fatalf("expected %+v, got %+v", view, got)
	}

	if err := pgStore.Touch(ctx, "sess1"); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}

	if err := pgStore.Destroy(ctx, "sess1"); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}

	if pgStore.Exist(ctx, "sess1") {
		t.Fatalf("expected session to be removed")
	}
}

func TestPostgresSessionStoreReadMissingSession(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	pgStore := newTestSessionStore(t, time.Hour)

	sess, err := pgStore.Read(ctx, "unknown")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if sess.ID() != "unknown" || sess.Get("patient_list_view") != nil {
		t.Fatalf("expected fresh session, got %#v", sess)
	}
}

func TestPostgresSessionStoreGCRemovesExpired(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	pgStore := newTestSessionStore(t, -time.Minute)
	noopWriter := func(_ http.ResponseWriter, _ *http.Request, _ string) {}

	if err := pgStore.Save(ctx, session.NewBaseSession("stale", session.GobEncoder, noopWriter)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if pgStore.Exist(ctx, "stale") {
		t.Fatal("expected expired session to be hidden")
	}

	if err := pgStore.GC(ctx); err != nil {
		t.Fatalf("GC failed: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM flamego_sessions`).Scan(&count); err != nil {
		t.Fatalf("failed to count sessions: %v", err)
	}

	if count != 0 {
		t.Fatalf("expected expired session to be collected, got %d rows", count)
	}
}
