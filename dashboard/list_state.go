/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import "slices"

// ListState is the patient list view: the original collection, the
// filtered and sorted working set, the displayed page and its pagination.
// Every operation returns a new ListState; the receiver is left untouched
// and the original collection is never modified.
type ListState struct {
	original   []Patient
	current    []Patient
	displayed  []Patient
	filters    FilterState
	sort       SortState
	pagination PaginationState
}

// NewListState starts a view over patients showing the first page.
func NewListState(patients []Patient) ListState {
	s := ListState{
		original: patients,
		current:  patients,
		filters:  DefaultFilters(),
	}

	return s.RecomputePagination()
}

// Original returns the unfiltered collection.
func (s ListState) Original() []Patient { return s.original }

// Current returns the filtered and sorted working set.
func (s ListState) Current() []Patient { return s.current }

// Displayed returns the patients on the current page.
func (s ListState) Displayed() []Patient { return s.displayed }

// Filters returns the active filters.
func (s ListState) Filters() FilterState { return s.filters }

// Sort returns the sort state.
func (s ListState) Sort() SortState { return s.sort }

// Pagination returns the pagination metadata.
func (s ListState) Pagination() PaginationState { return s.pagination }

// RecomputePagination derives the page count from the working set and
// returns to page 1 with the button window at its start.
func (s ListState) RecomputePagination() ListState {
	s.pagination = newPagination(len(s.current))
	return s.GoToPage(1)
}

// GoToPage shows page n. Pages outside [1, TotalPages] are not rejected:
// they yield an empty or partial page, and callers are expected to guard.
func (s ListState) GoToPage(n int) ListState {
	s.pagination = s.pagination.moveTo(n)
	start, end := pageBounds(n, s.pagination.ItemsPerPage, len(s.current))
	s.displayed = s.current[start:end:end]

	return s
}

// NextPage advances one page; it is a no-op on the last page.
func (s ListState) NextPage() ListState {
	if !s.pagination.HasNext() {
		return s
	}

	return s.GoToPage(s.pagination.CurrentPage + 1)
}

// PreviousPage goes back one page; it is a no-op on the first page.
func (s ListState) PreviousPage() ListState {
	if !s.pagination.HasPrevious() {
		return s
	}

	return s.GoToPage(s.pagination.CurrentPage - 1)
}

// ApplyFilters re-derives the working set from the original collection,
// keeps the active sort order and returns to page 1.
func (s ListState) ApplyFilters(f FilterState) ListState {
	s.filters = f
	s.current = SortPatients(ApplyFilters(s.original, f), s.sort.Comparator())

	return s.RecomputePagination()
}

// ToggleSort flips the direction of col, reorders the working set and
// returns to page 1.
func (s ListState) ToggleSort(col SortColumn) ListState {
	s.sort = s.sort.Toggle(col)
	s.current = SortPatients(s.current, s.sort.Comparator())

	return s.RecomputePagination()
}

// ClearFilters restores the original collection and order with default
// filters. Remembered sort directions are kept for the next toggle.
func (s ListState) ClearFilters() ListState {
	s.filters = DefaultFilters()
	s.sort.Active = SortNone
	s.current = s.original

	return s.RecomputePagination()
}

// FindByAdmission looks a patient up by admission id in the original
// collection.
func (s ListState) FindByAdmission(admissionID int64) (Patient, error) {
	return FindByAdmission(s.original, admissionID)
}

// FindByAdmission returns the patient with the given admission id.
func FindByAdmission(patients []Patient, admissionID int64) (Patient, error) {
	i := slices.IndexFunc(patients, func(p Patient) bool { return p.AdmissionID == admissionID })
	if i < 0 {
		return Patient{}, ErrPatientNotFound
	}

	return patients[i], nil
}

// ViewState is the serialisable part of a ListState, kept between
// requests so the list can be rebuilt from freshly fetched patients.
type ViewState struct {
	Filters     FilterState
	Sort        SortState
	Page        int
	WindowStart int
}

// View captures the state needed to rebuild s with Restore.
func (s ListState) View() ViewState {
	return ViewState{
		Filters:     s.filters,
		Sort:        s.sort,
		Page:        s.pagination.CurrentPage,
		WindowStart: s.pagination.WindowStart,
	}
}

// Restore rebuilds a list view over patients from a saved ViewState.
func Restore(patients []Patient, v ViewState) ListState {
	filters := v.Filters
	if filters == (FilterState{}) {
		filters = DefaultFilters()
	}

	s := NewListState(patients)
	s.sort = v.Sort
	s = s.ApplyFilters(filters)

	if v.WindowStart > 0 {
		last := s.pagination.TotalPages - s.pagination.windowSize() + 1
		s.pagination.WindowStart = max(1, min(v.WindowStart, last))
	}
	if v.Page > 0 {
		s = s.GoToPage(v.Page)
	}

	return s
}
