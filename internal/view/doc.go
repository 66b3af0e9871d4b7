// Package view computes what a record table shows for a given view state.
//
// The pipeline is pure and runs in full on every state change:
//   - Filter: case-insensitive substring search over string-valued fields
//   - Sort: single-key comparison sort with a fixed order for missing values
//   - Paginate: page slicing plus page-count metadata
//
// State transitions are explicit: an Intent (search, sort toggle, page change)
// is applied to a State by Transition, and Query derives a fresh Result from
// the record store and the new state. Session bundles both for UI layers.
package view
