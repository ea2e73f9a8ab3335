/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import "errors"

var (
	ErrEmptyPopulation    = errors.New("population is empty")
	ErrInvalidBucketWidth = errors.New("bucket width must be positive")
	ErrNonFiniteAge       = errors.New("age must be a finite number")
	ErrTooManyBuckets     = errors.New("age range needs too many buckets")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrMisalignedSeries   = errors.New("dates and readmission rates differ in length")
	ErrUnknownSortColumn  = errors.New("unknown sort column")
	ErrUnknownRiskFilter  = errors.New("unknown risk level filter")
)
