package records

import "errors"

// ErrAlreadyLoaded is returned when Load is called on a store that already holds a collection.
var ErrAlreadyLoaded = errors.New("record collection already loaded")

// Store holds the raw record collection for one view session.
// The collection is installed once by Load and never modified afterwards.
type Store struct {
	records []Record
	loaded  bool
}

// NewStore creates an empty, unloaded store.
func NewStore() *Store {
	return &Store{}
}

// Load installs the collection. It fails with ErrAlreadyLoaded on every call after the first.
// A nil collection is stored as an empty one.
func (s *Store) Load(records []Record) error {
	if s.loaded {
		return ErrAlreadyLoaded
	}
	s.records = make([]Record, len(records))
	copy(s.records, records)
	s.loaded = true
	return nil
}

// Loaded reports whether Load has succeeded.
func (s *Store) Loaded() bool {
	return s.loaded
}

// All returns the full collection, or an empty slice before Load.
// Callers must not modify the returned slice.
func (s *Store) All() []Record {
	if !s.loaded {
		return []Record{}
	}
	return s.records
}

// Len returns the number of records in the collection.
func (s *Store) Len() int {
	return len(s.records)
}

// FieldNames returns the field names of the first record in document order,
// or an empty slice when the collection is empty. These define the columns.
func (s *Store) FieldNames() []string {
	if len(s.records) == 0 {
		return []string{}
	}
	return s.records[0].Fields()
}
