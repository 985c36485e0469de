package models

import "strconv"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination is a normalized page window: Page >= 1 and
// 1 <= PageSize <= MaxPageSize.
type Pagination struct {
	Page     int
	PageSize int
}

// NormalizePagination parses raw page/pageSize query values.
//
// Missing or non-numeric values fall back to the defaults, a page below 1
// becomes 1, and pageSize is clamped to [1, MaxPageSize].
func NormalizePagination(page, pageSize string) Pagination {
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		p = DefaultPage
	}

	size, err := strconv.Atoi(pageSize)
	if err != nil {
		size = DefaultPageSize
	}
	size = min(max(size, 1), MaxPageSize)

	return Pagination{Page: p, PageSize: size}
}

// Skip returns the number of rows preceding the window.
func (p Pagination) Skip() int {
	return (p.Page - 1) * p.PageSize
}

// Take returns the window size.
func (p Pagination) Take() int {
	return p.PageSize
}
