/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	ErrDatabaseURLEnvVarNotSet          = errors.New("DATABASE_URL environment variable is not set")
	ErrDatabaseNameNotSpecified         = errors.New("database name not specified in DATABASE_URL")
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")
	ErrUnknownCollection                = errors.New("unknown collection")
	ErrSampleDirRequired                = errors.New("sample data directory is required")

	errInvalidSessionConfig = errors.New("invalid PostgresSessionConfig")
)
