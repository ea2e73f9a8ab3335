/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

// Pagination constants.
const (
	ItemsPerPage        = 15
	NumberOfPageButtons = 5
)

// PaginationState describes the current page and the visible page buttons.
type PaginationState struct {
	CurrentPage  int
	ItemsPerPage int
	TotalPages   int
	// WindowStart is the first page number of the button window.
	WindowStart int
}

// TotalPages returns ceil(total/perPage).
func TotalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}

	return (total + perPage - 1) / perPage
}

func newPagination(total int) PaginationState {
	return PaginationState{
		CurrentPage:  1,
		ItemsPerPage: ItemsPerPage,
		TotalPages:   TotalPages(total, ItemsPerPage),
		WindowStart:  1,
	}
}

// windowSize is the number of buttons shown, never more than there are pages.
func (p PaginationState) windowSize() int {
	return min(NumberOfPageButtons, p.TotalPages)
}

// Buttons returns the page numbers currently shown as buttons.
func (p PaginationState) Buttons() []int {
	size := p.windowSize()
	buttons := make([]int, 0, size)

	for i := 0; i < size; i++ {
		buttons = append(buttons, p.WindowStart+i)
	}

	return buttons
}

// IsButtonVisible reports whether page has a visible button.
func (p PaginationState) IsButtonVisible(page int) bool {
	size := p.windowSize()
	return size > 0 && page >= p.WindowStart && page < p.WindowStart+size
}

// ActivePage is the page whose button should be highlighted, or 0 when the
// current page is outside the valid range.
func (p PaginationState) ActivePage() int {
	if p.CurrentPage < 1 || p.CurrentPage > p.TotalPages {
		return 0
	}

	return p.CurrentPage
}

// HasPrevious reports whether a previous page exists.
func (p PaginationState) HasPrevious() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (p PaginationState) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// moveTo sets the current page and slides the window so that a valid
// page stays visible. Stepping one past either edge shifts the window by
// one; farther jumps re-anchor it. Invalid pages leave the window alone.
func (p PaginationState) moveTo(page int) PaginationState {
	p.CurrentPage = page
	if page < 1 || page > p.TotalPages || p.IsButtonVisible(page) {
		return p
	}

	size := p.windowSize()
	switch page {
	case p.WindowStart - 1:
		p.WindowStart--
	case p.WindowStart + size:
		p.WindowStart++
	default:
		p.WindowStart = max(1, min(page, p.TotalPages-size+1))
	}

	return p
}

// pageBounds returns the [start, end) slice bounds of page within total
// items, clipped to the collection.
func pageBounds(page, perPage, total int) (int, int) {
	start := (page - 1) * perPage
	end := page * perPage

	start = max(0, min(start, total))
	end = max(start, min(end, total))

	return start, end
}
