package view

import "slices"

// Schema restricts which fields take part in search and sort.
// An empty list means every field qualifies.
type Schema struct {
	SearchFields []string
	SortFields   []string
}

// Searchable reports whether field is considered by the search filter.
func (s Schema) Searchable(field string) bool {
	return len(s.SearchFields) == 0 || slices.Contains(s.SearchFields, field)
}

// Sortable reports whether field may be used as a sort key.
func (s Schema) Sortable(field string) bool {
	return len(s.SortFields) == 0 || slices.Contains(s.SortFields, field)
}
