// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"testing"
	"time"
)

func TestPostgresSessionIniterDefaults(t *testing.T) {
	t.Parallel()

	initer := PostgresSessionIniter()
	store, err := initer(testContext())
	if err != nil {
		t.Fatalf("PostgresSessionIniter failed: %v", err)
	}

	pgStore, ok := store.(*PostgresSessionStore)
	if !ok {
		t.Fatalf("expected PostgresSessionStore")
	}
	if pgStore.config.TableName != "flamego_sessions" {
		t.Fatalf("expected default table name, got %q", pgStore.config.TableName)
	}
	if pgStore.config.Lifetime != 7*24*time.Hour {
		t.Fatalf("expected default lifetime, got %v", pgStore.config.Lifetime)
	}
	if pgStore.encoder == nil || pgStore.decoder == nil {
		t.Fatalf("expected encoder and decoder to be set")
	}
}

func TestPostgresSessionIniterCustomConfig(t *testing.T) {
	t.Parallel()

	store, err := PostgresSessionIniter()(testContext(), PostgresSessionConfig{
		Lifetime:  time.Hour,
		TableName: "view_sessions",
	})
	if err != nil {
		t.Fatalf("PostgresSessionIniter failed: %v", err)
	}

	pgStore := store.(*PostgresSessionStore)
	if pgStore.config.Lifetime != time.Hour {
		t.Fatalf("expected custom lifetime, got %v", pgStore.config.Lifetime)
	}
	if got := pgStore.table(); got != `"view_sessions"` {
		t.Fatalf("expected quoted table name, got %s", got)
	}
}

func TestPostgresSessionIniterInvalidConfig(t *testing.T) {
	t.Parallel()

	initer := PostgresSessionIniter()
	if _, err := initer(testContext(), "invalid"); !errors.Is(err, errInvalidSessionConfig) {
		t.Fatalf("expected invalid config error, got %v", err)
	}
}
