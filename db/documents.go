/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Collection names a group of documents in the documents table.
type Collection string

const (
	CollectionAdmissions          Collection = "discharge_admissions"
	CollectionComorbids           Collection = "discharge_comorbids"
	CollectionDischargePatients   Collection = "discharge_patients"
	CollectionProcessedPatients   Collection = "processed_patients"
	CollectionReferencePopulation Collection = "reference_population"
	CollectionReadmissionRates    Collection = "readmission_rates"
)

// Collections lists every collection in import order.
var Collections = []Collection{
	CollectionAdmissions,
	CollectionComorbids,
	CollectionDischargePatients,
	CollectionProcessedPatients,
	CollectionReferencePopulation,
	CollectionReadmissionRates,
}

func (c Collection) valid() bool {
	return slices.Contains(Collections, c)
}

// InsertDocuments stores docs in the collection in a single batch. Insertion
// order is kept by the seq column.
func InsertDocuments[T any](ctx context.Context, coll Collection, docs []T) (int, error) {
	if pool == nil {
		return 0, ErrDatabaseConnectionNotInitialized
	}

	if !coll.valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCollection, coll)
	}

	if len(docs) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}

	for _, doc := range docs {
		body, err := json.Marshal(doc)
		if err != nil {
			return 0, fmt.Errorf("failed to encode %s document: %w", coll, err)
		}

		batch.Queue(
			`INSERT INTO documents (id, collection, body) VALUES ($1, $2, $3)`,
			uuid.New(), string(coll), body,
		)
	}

	results := pool.SendBatch(ctx, batch)

	for range docs {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return 0, fmt.Errorf("failed to insert %s document: %w", coll, err)
		}
	}

	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to finish %s batch: %w", coll, err)
	}

	return len(docs), nil
}

// ListDocuments returns every document of the collection in insertion order.
func ListDocuments[T any](ctx context.Context, coll Collection) ([]T, error) {
	return queryDocuments[T](ctx, coll,
		`SELECT body FROM documents WHERE collection = $1 ORDER BY seq`,
		string(coll),
	)
}

func queryDocuments[T any](ctx context.Context, coll Collection, query string, args ...any) ([]T, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	if !coll.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, coll)
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll, err)
	}
	defer rows.Close()

	docs := []T{}

	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan %s document: %w", coll, err)
		}

		var doc T
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", coll, err)
		}

		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", coll, err)
	}

	return docs, nil
}

// CountDocuments returns the number of documents in the collection.
func CountDocuments(ctx context.Context, coll Collection) (int, error) {
	if pool == nil {
		return 0, ErrDatabaseConnectionNotInitialized
	}

	var count int

	err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = $1`,
		string(coll),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", coll, err)
	}

	return count, nil
}

// DeleteCollection removes every document of the collection.
func DeleteCollection(ctx context.Context, coll Collection) (int64, error) {
	if pool == nil {
		return 0, ErrDatabaseConnectionNotInitialized
	}

	tag, err := pool.Exec(ctx, `DELETE FROM documents WHERE collection = $1`, string(coll))
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", coll, err)
	}

	return tag.RowsAffected(), nil
}

// DeleteAllData empties every known collection.
func DeleteAllData(ctx context.Context) error {
	for _, coll := range Collections {
		deleted, err := DeleteCollection(ctx, coll)
		if err != nil {
			return err
		}

		logger.Info("Deleted collection", "collection", coll, "documents", deleted)
	}

	return nil
}
