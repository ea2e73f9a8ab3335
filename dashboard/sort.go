/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"cmp"
	"fmt"
	"slices"
)

// SortColumn names a sortable list column.
type SortColumn string

// Sortable columns.
const (
	SortNone SortColumn = ""
	SortAge  SortColumn = "age"
	SortRisk SortColumn = "risk"
)

// ParseSortColumn accepts the column keys used in URLs and the original
// column headings.
func ParseSortColumn(s string) (SortColumn, error) {
	switch s {
	case "age", "Age":
		return SortAge, nil
	case "risk", "Risk Score":
		return SortRisk, nil
	}

	return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortColumn, s)
}

// SortDirection is ascending or descending; the zero value means unsorted.
type SortDirection string

// Sort directions.
const (
	Unsorted   SortDirection = ""
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Comparator orders two patients.
type Comparator func(a, b Patient) int

// AgeAsc orders by age, youngest first.
func AgeAsc(a, b Patient) int { return cmp.Compare(a.Age, b.Age) }

// AgeDesc orders by age, oldest first.
func AgeDesc(a, b Patient) int { return cmp.Compare(b.Age, a.Age) }

// RiskAsc orders by readmission risk, lowest first.
func RiskAsc(a, b Patient) int { return cmp.Compare(a.ReadmissionRisk, b.ReadmissionRisk) }

// RiskDesc orders by readmission risk, highest first.
func RiskDesc(a, b Patient) int { return cmp.Compare(b.ReadmissionRisk, a.ReadmissionRisk) }

// ComparatorFor returns the comparator for a column and direction, or nil
// when either is unset.
func ComparatorFor(col SortColumn, dir SortDirection) Comparator {
	switch {
	case col == SortAge && dir == Ascending:
		return AgeAsc
	case col == SortAge && dir == Descending:
		return AgeDesc
	case col == SortRisk && dir == Ascending:
		return RiskAsc
	case col == SortRisk && dir == Descending:
		return RiskDesc
	}

	return nil
}

// SortState remembers the last direction applied to each column and which
// column currently orders the list.
type SortState struct {
	Active SortColumn
	Age    SortDirection
	Risk   SortDirection
}

// Direction returns the remembered direction for col.
func (s SortState) Direction(col SortColumn) SortDirection {
	switch col {
	case SortAge:
		return s.Age
	case SortRisk:
		return s.Risk
	}

	return Unsorted
}

// Toggle flips col's direction and makes it the active column. A column
// that was never sorted starts descending. The other column keeps its
// remembered direction.
func (s SortState) Toggle(col SortColumn) SortState {
	next := Descending
	if s.Direction(col) == Descending {
		next = Ascending
	}

	switch col {
	case SortAge:
		s.Age = next
	case SortRisk:
		s.Risk = next
	default:
		return s
	}
	s.Active = col

	return s
}

// Comparator returns the comparator of the active column, or nil.
func (s SortState) Comparator() Comparator {
	return ComparatorFor(s.Active, s.Direction(s.Active))
}

// SortPatients returns a sorted copy of patients. Ties keep their input order.
func SortPatients(patients []Patient, less Comparator) []Patient {
	sorted := slices.Clone(patients)
	if less != nil {
		slices.SortStableFunc(sorted, less)
	}

	return sorted
}
