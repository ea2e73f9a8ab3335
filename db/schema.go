/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"

	// Register pgx with database/sql for goose migrations.
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// GetEmbeddedMigrations returns the embedded migrations filesystem for use by CLI commands
func GetEmbeddedMigrations() embed.FS {
	return embedMigrations
}

// SyncSchema brings the documents and session tables up to date and logs
// how many documents each collection holds.
func SyncSchema(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return ErrDatabaseURLEnvVarNotSet
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close migration connection", "error", err)
		}
	}()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	counts, err := CollectionCounts(ctx)
	if err != nil {
		return err
	}

	fields := make([]interface{}, 0, 2*len(Collections))
	for _, coll := range Collections {
		fields = append(fields, string(coll), counts[coll])
	}

	logger.Info("Document collections are up to date", fields...)

	return nil
}

// CollectionCounts returns the number of documents in every collection.
func CollectionCounts(ctx context.Context) (map[Collection]int, error) {
	counts := make(map[Collection]int, len(Collections))

	for _, coll := range Collections {
		n, err := CountDocuments(ctx, coll)
		if err != nil {
			return nil, err
		}

		counts[coll] = n
	}

	return counts, nil
}
