package view

import (
	"github.com/rshade/usertable/internal/records"
)

// Meta contains pagination metadata for a computed view.
type Meta struct {
	CurrentPage   int  `json:"current_page"   yaml:"current_page"`
	PageSize      int  `json:"page_size"      yaml:"page_size"`
	PageCount     int  `json:"page_count"     yaml:"page_count"`
	TotalMatching int  `json:"total_matching" yaml:"total_matching"`
	TotalRecords  int  `json:"total_records"  yaml:"total_records"`
	HasPrevious   bool `json:"has_previous"   yaml:"has_previous"`
	HasNext       bool `json:"has_next"       yaml:"has_next"`
	// FirstIndex and LastIndex are the 1-based positions of the visible rows
	// within the matching set; both are 0 when nothing is visible.
	FirstIndex int `json:"first_index" yaml:"first_index"`
	LastIndex  int `json:"last_index"  yaml:"last_index"`
}

// NewMeta derives pagination metadata. page must already be clamped.
func NewMeta(page, pageSize, totalMatching, totalRecords, visible int) Meta {
	pageSize = NormalizePageSize(pageSize)
	pageCount := PageCount(totalMatching, pageSize)

	meta := Meta{
		CurrentPage:   page,
		PageSize:      pageSize,
		PageCount:     pageCount,
		TotalMatching: totalMatching,
		TotalRecords:  totalRecords,
		HasPrevious:   HasPrevious(page),
		HasNext:       HasNext(page, pageCount),
	}
	if visible > 0 {
		meta.FirstIndex = (page-1)*pageSize + 1
		meta.LastIndex = meta.FirstIndex + visible - 1
	}
	return meta
}

// Result is the set of rows to display for a state, plus pagination metadata.
type Result struct {
	Records []records.Record `json:"records"`
	Meta    Meta             `json:"meta"`
}

// Empty reports whether no record matched.
func (r Result) Empty() bool {
	return r.Meta.TotalMatching == 0
}
