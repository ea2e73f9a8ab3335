/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import "errors"

var (
	errMissingField      = errors.New("missing field")
	errInvalidNumber     = errors.New("invalid number")
	errInvalidTimeFormat = errors.New("invalid date/time format")
)
