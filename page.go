// Package paginate splits large ordered collections into pages and renders
// navigable pager link lists.
//
// A page of items is represented by the Page type. It is built from a
// Collection (anything that can report its length and return a contiguous
// sub-range) plus a requested page number. The resulting State carries the
// page-boundary arithmetic: first/last item on the page, previous/next page,
// total page count.
//
// The Pager function and the BuildLinkMap/BuildRange helpers turn a State
// into a navigable link list, collapsing large page ranges into a
// radius-limited window with gap markers:
//
//	1 .. 5 6 [7] 8 9 .. 50
//
// Page numbers and item numbers start at 1: users expect the first page and
// the first item on a page to be number 1. Subtract 1 when indexing into a
// zero-based slice.
package paginate

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultItemsPerPage is used when no per-page size (or a non-positive one)
// is supplied.
const DefaultItemsPerPage = 20

// State holds the page-boundary arithmetic for one page of a collection.
// It is computed once and never mutated.
//
// Absent values are represented with zeros: when ItemCount is 0, PageCount
// is 0 and FirstPage, LastPage, Page, FirstItem and LastItem are all 0.
// PreviousPage and NextPage are 0 on the first and last page respectively;
// use HasPrevious and HasNext to test presence.
type State struct {
	// RequestedPage is the page number as requested, before clamping.
	RequestedPage int

	// ItemsPerPage is the maximal number of items displayed on a page.
	ItemsPerPage int

	// ItemCount is the total number of items in the collection.
	ItemCount int

	// FirstPage is the number of the first page - 1 whenever items exist.
	FirstPage int

	// LastPage is the number of the last page.
	LastPage int

	// Page is the current page number, clamped into [FirstPage, LastPage].
	Page int

	// PageCount is the total number of pages.
	PageCount int

	// FirstItem is the 1-based index of the first item on the current page.
	FirstItem int

	// LastItem is the 1-based index of the last item on the current page.
	LastItem int

	// PreviousPage is Page-1, or 0 on the first page.
	PreviousPage int

	// NextPage is Page+1, or 0 on the last page.
	NextPage int
}

// Compute derives the full page state from the collection size, the
// requested page number and the page size. It is pure arithmetic and cannot
// fail: out-of-range page numbers are silently clamped into the valid
// range, a non-positive itemsPerPage falls back to DefaultItemsPerPage and
// a negative itemCount is treated as 0.
func Compute(itemCount, requestedPage, itemsPerPage int) State {
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultItemsPerPage
	}
	if itemCount < 0 {
		itemCount = 0
	}

	s := State{
		RequestedPage: requestedPage,
		ItemsPerPage:  itemsPerPage,
		ItemCount:     itemCount,
	}

	// No items: every boundary field stays at its zero value.
	if itemCount == 0 {
		return s
	}

	s.FirstPage = 1
	s.PageCount = (itemCount-1)/itemsPerPage + 1
	s.LastPage = s.FirstPage + s.PageCount - 1

	// Clamp the requested page into the range of valid pages.
	s.Page = requestedPage
	if s.Page > s.LastPage {
		s.Page = s.LastPage
	} else if s.Page < s.FirstPage {
		s.Page = s.FirstPage
	}

	// The number of items on this page can be less than ItemsPerPage if
	// the last page is not full.
	s.FirstItem = (s.Page-1)*itemsPerPage + 1
	s.LastItem = min(s.FirstItem+itemsPerPage-1, itemCount)

	if s.Page > s.FirstPage {
		s.PreviousPage = s.Page - 1
	}
	if s.Page < s.LastPage {
		s.NextPage = s.Page + 1
	}

	return s
}

// ParsePage parses a page number from its string form, typically a query
// parameter. Empty or non-numeric input defaults to page 1; it never fails.
// Out-of-range values are left as-is for Compute to clamp.
func ParsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return n
}

// HasPrevious reports whether a previous page exists.
func (s State) HasPrevious() bool {
	return s.PreviousPage != 0
}

// HasNext reports whether a next page exists.
func (s State) HasNext() bool {
	return s.NextPage != 0
}

// String returns a short diagnostic summary of the page state.
func (s State) String() string {
	if s.PageCount == 0 {
		return "page 0 of 0 (no items)"
	}
	return fmt.Sprintf("page %d of %d (items %d-%d of %d, %d per page)",
		s.Page, s.PageCount, s.FirstItem, s.LastItem, s.ItemCount, s.ItemsPerPage)
}
