/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errSourceRequired        = errors.New("either database-url or api-url is required (set via flags or DATABASE_URL / RISK_API_URL)")
	errMigrationNameRequired = errors.New("migration name is required")
)
