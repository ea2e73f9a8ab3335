/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// NullValue marks an absent field in the sample data exports.
const NullValue = "null"

// Record is one data line of a delimited file.
type Record struct {
	Line   int
	Fields []string
}

// ReadDelimited reads every data line of r split on sep. The first line is
// a header and is skipped, as are blank lines. Rows may have differing
// field counts; accessors report missing fields.
func ReadDelimited(r io.Reader, sep rune) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = sep
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records []Record
	header := true

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read delimited data: %w", err)
		}

		if header {
			header = false
			continue
		}

		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}

		line, _ := reader.FieldPos(0)
		records = append(records, Record{Line: line, Fields: fields})
	}

	return records, nil
}

func (r Record) field(i int) (string, error) {
	if i < 0 || i >= len(r.Fields) {
		return "", fmt.Errorf("line %d: %w %d", r.Line, errMissingField, i)
	}

	return strings.TrimSpace(r.Fields[i]), nil
}

// String returns field i, or an empty string for null.
func (r Record) String(i int) (string, error) {
	v, err := r.field(i)
	if err != nil || v == NullValue {
		return "", err
	}

	return v, nil
}

// Int64 parses field i. Null and empty fields are zero.
func (r Record) Int64(i int) (int64, error) {
	v, err := r.String(i)
	if err != nil || v == "" {
		return 0, err
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		// Some exports write integral columns as floats, e.g. "12.0".
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != float64(int64(f)) {
			return 0, fmt.Errorf("line %d field %d: %w %q", r.Line, i, errInvalidNumber, v)
		}
		n = int64(f)
	}

	return n, nil
}

// Float parses field i. Null and empty fields are zero.
func (r Record) Float(i int) (float64, error) {
	v, err := r.String(i)
	if err != nil || v == "" {
		return 0, err
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d field %d: %w %q", r.Line, i, errInvalidNumber, v)
	}

	return f, nil
}

// Time parses field i with ParseTime. Null and empty fields are nil.
func (r Record) Time(i int) (*time.Time, error) {
	v, err := r.String(i)
	if err != nil || v == "" {
		return nil, err
	}

	t, err := ParseTime(v)
	if err != nil {
		return nil, fmt.Errorf("line %d field %d: %w", r.Line, i, err)
	}

	return &t, nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
}

// ParseTime parses the timestamp formats found in the clinical exports.
// Values without a zone are taken as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", errInvalidTimeFormat, s)
}
