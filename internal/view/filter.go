package view

import (
	"strings"

	"github.com/rshade/usertable/internal/records"
)

// Filter returns the records where at least one searchable string-valued field
// contains term, ignoring case. Numbers, booleans and nested objects never match.
// An empty term returns recs unchanged. Input order is preserved.
func Filter(recs []records.Record, term string, schema Schema) []records.Record {
	if term == "" {
		return recs
	}

	needle := strings.ToLower(term)
	filtered := make([]records.Record, 0, len(recs))
	for _, r := range recs {
		if matches(r, needle, schema) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// matchesTerm reports whether a single record satisfies the search term.
func matchesTerm(r records.Record, term string, schema Schema) bool {
	if term == "" {
		return true
	}
	return matches(r, strings.ToLower(term), schema)
}

func matches(r records.Record, needle string, schema Schema) bool {
	for _, field := range r.Fields() {
		if !schema.Searchable(field) {
			continue
		}
		value, ok := r.String(field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}
