// Package listview implements the search-filter-paginate view model shared by
// every list screen. A screen fetches its full collection once, then derives
// the visible rows from (collection, query, page, page size) with no other state.
package listview

import (
	"strconv"
	"strings"
)

// Extractor returns the searchable string for one column of an item. The row
// argument is the item's 1-based position in the original collection, so a
// derived row-number column can participate in search.
type Extractor[T any] func(item T, row int) string

// RowNumber is the derived "#" column extractor.
func RowNumber[T any](_ T, row int) string {
	return strconv.Itoa(row)
}

// Model describes how a collection is searched and paged. It holds no data.
type Model[T any] struct {
	PageSize   int
	Extractors []Extractor[T]
}

// Page is one rendered slice of the filtered collection.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Rows       []int `json:"rows"` // original 1-based row numbers, parallel to Items
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Total      int   `json:"total"`    // size of the raw collection
	Filtered   int   `json:"filtered"` // size after the query filter
}

// Empty reports the "no records found" state. It is rendered as a sentinel
// row, never treated as an error.
func (p Page[T]) Empty() bool { return p.Filtered == 0 }

// Filter returns the subsequence of items whose extracted column values
// case-insensitively contain query, preserving relative order. An empty query
// matches everything. The returned ints are original 1-based row numbers.
func (m Model[T]) Filter(items []T, query string) ([]T, []int) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		rows := make([]int, len(items))
		for i := range items {
			rows[i] = i + 1
		}
		return items, rows
	}

	var (
		matched []T
		rows    []int
	)
	for i, item := range items {
		for _, extract := range m.Extractors {
			if strings.Contains(strings.ToLower(extract(item, i+1)), query) {
				matched = append(matched, item)
				rows = append(rows, i+1)
				break
			}
		}
	}
	return matched, rows
}

// View derives the page for the given query and requested page number. The
// page is clamped to [1, totalPages]; totalPages is never below 1, so an empty
// result still renders as one empty page.
func (m Model[T]) View(items []T, query string, page int) Page[T] {
	size := m.PageSize
	if size <= 0 {
		size = 1
	}

	filtered, rows := m.Filter(items, query)

	totalPages := (len(filtered) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page[T]{
		Items:      filtered[start:end],
		Rows:       rows[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      len(items),
		Filtered:   len(filtered),
	}
}

// Controller wraps a Model with the screen-local query/page state and the
// rule that changing the query always resets the page to 1.
type Controller[T any] struct {
	Model Model[T]

	query string
	page  int
}

// SetQuery updates the free-text query. Any change resets the page to 1.
func (c *Controller[T]) SetQuery(q string) {
	if q != c.query {
		c.page = 1
	}
	c.query = q
}

// SetPage requests a page; it is clamped at view time.
func (c *Controller[T]) SetPage(p int) { c.page = p }

// View renders the current page of items.
func (c *Controller[T]) View(items []T) Page[T] {
	if c.page == 0 {
		c.page = 1
	}
	return c.Model.View(items, c.query, c.page)
}
