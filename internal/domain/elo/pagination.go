package elo

import "slices"

// DefaultPageSize is the number of rows per page before the user changes it
const DefaultPageSize = 20

// PageSizeOptions lists the page sizes a user may pick
var PageSizeOptions = []int{5, 10, 20, 25, 50, 100}

// ValidPageSize reports whether size is one of PageSizeOptions
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizeOptions, size)
}

// PageCount returns the number of pages, never less than one
// Pure function: simple arithmetic
func PageCount(totalRows, pageSize int) int {
	if pageSize <= 0 || totalRows <= 0 {
		return 1
	}
	return (totalRows + pageSize - 1) / pageSize
}

// ClampPage keeps a page index within [0, pageCount-1]
func ClampPage(page, pageCount int) int {
	if page >= pageCount {
		page = pageCount - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}

// PageRows returns the rows on the given page
// Pure function: slices the input without copying elements
func PageRows(rows []TableRow, page, pageSize int) []TableRow {
	if pageSize <= 0 {
		return rows
	}
	start := page * pageSize
	if start >= len(rows) || start < 0 {
		return []TableRow{}
	}
	end := min(start+pageSize, len(rows))
	return rows[start:end]
}

// RepageForSize returns the page that keeps the first visible row on screen
// after switching from pageSize to newPageSize
func RepageForSize(page, pageSize, newPageSize int) int {
	if newPageSize <= 0 {
		return 0
	}
	return (page * pageSize) / newPageSize
}

// NextPageSize returns the neighbouring page size option, or size itself at either end
func NextPageSize(size int, larger bool) int {
	index := slices.Index(PageSizeOptions, size)
	if index < 0 {
		return DefaultPageSize
	}
	if larger && index < len(PageSizeOptions)-1 {
		return PageSizeOptions[index+1]
	}
	if !larger && index > 0 {
		return PageSizeOptions[index-1]
	}
	return size
}
