// Package records holds the raw user collection displayed by usertable.
//
// A Record is a dynamic mapping from field name to value whose field set is
// only known at runtime. Records remember the key order of the JSON object
// they were decoded from, so the first record of a collection defines the
// table columns in document order.
//
// The Store installs a collection exactly once per session and exposes it
// read-only to the view pipeline.
package records
