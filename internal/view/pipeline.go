package view

import (
	"github.com/rshade/usertable/internal/records"
)

// Source supplies the raw record collection. *records.Store implements it.
type Source interface {
	All() []records.Record
}

// Pipeline composes Filter, Sort and Paginate under a Schema.
type Pipeline struct {
	Schema Schema
}

// NewPipeline creates a pipeline restricted by schema.
func NewPipeline(schema Schema) Pipeline {
	return Pipeline{Schema: schema}
}

// Query filters the source by the search term, sorts the matches and returns
// the requested page. The page is clamped into [1, PageCount] so the result
// is always displayable. Query has no side effects.
func (p Pipeline) Query(src Source, state State) Result {
	all := src.All()
	matching := Filter(all, state.SearchTerm, p.Schema)
	sorted := matching
	if state.Sorted() {
		sorted = Sort(matching, state.SortKey, state.SortOrder)
	}

	pageSize := NormalizePageSize(state.PageSize)
	page := ClampPage(state.CurrentPage, PageCount(len(sorted), pageSize))
	visible := Paginate(sorted, pageSize, page)

	return Result{
		Records: visible,
		Meta:    NewMeta(page, pageSize, len(sorted), len(all), len(visible)),
	}
}

// Query runs an unrestricted pipeline.
func Query(src Source, state State) Result {
	return Pipeline{}.Query(src, state)
}
