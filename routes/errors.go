/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errInvalidAdmissionID = errors.New("invalid admission id")
	errInvalidPage        = errors.New("invalid page")
	errInvalidAge         = errors.New("invalid age")
	errInvalidAgeRange    = errors.New("minimum age is above maximum age")
	errInvalidDate        = errors.New("invalid date")
	errInvalidDateRange   = errors.New("discharge from is after discharge to")
	errDataUnavailable    = errors.New("patient data is unavailable")
)
