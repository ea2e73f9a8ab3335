/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package client

import "errors"

var (
	ErrBaseURLRequired   = errors.New("risk API base URL is required")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrInvalidFieldValue = errors.New("invalid field value")
)
