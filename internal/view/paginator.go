package view

import (
	"github.com/rshade/usertable/internal/records"
)

// Page size defaults and limits.
const (
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 1000
	FirstPage       = 1
)

// NormalizePageSize returns pageSize, or DefaultPageSize when it is not positive.
func NormalizePageSize(pageSize int) int {
	if pageSize < MinPageSize {
		return DefaultPageSize
	}
	return pageSize
}

// PageCount returns ceil(total/pageSize), and 1 for an empty collection.
func PageCount(total, pageSize int) int {
	pageSize = NormalizePageSize(pageSize)
	if total <= 0 {
		return 1
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}

// ChangePage validates a page change. A requested page outside [1, pageCount]
// is rejected and current is returned unchanged; it is neither clamped nor an error.
func ChangePage(current, requested, pageCount int) int {
	if requested < FirstPage || requested > pageCount {
		return current
	}
	return requested
}

// ClampPage moves page into [1, max(1, pageCount)].
func ClampPage(page, pageCount int) int {
	if pageCount < FirstPage {
		pageCount = FirstPage
	}
	switch {
	case page < FirstPage:
		return FirstPage
	case page > pageCount:
		return pageCount
	default:
		return page
	}
}

// HasPrevious reports whether a previous page exists.
func HasPrevious(page int) bool {
	return page > FirstPage
}

// HasNext reports whether a next page exists.
func HasNext(page, pageCount int) bool {
	return page < pageCount
}

// Paginate returns records[(page-1)*pageSize : page*pageSize], shortened on the
// last page and empty when the page lies outside the collection.
// The returned slice shares storage with recs but cannot be appended into it.
func Paginate(recs []records.Record, pageSize, page int) []records.Record {
	pageSize = NormalizePageSize(pageSize)
	if page < FirstPage {
		return []records.Record{}
	}

	start := (page - 1) * pageSize
	if start >= len(recs) {
		return []records.Record{}
	}
	end := start + pageSize
	if end > len(recs) {
		end = len(recs)
	}
	return recs[start:end:end]
}
