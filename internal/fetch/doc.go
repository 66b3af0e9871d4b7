// Package fetch loads the raw user collection for a view session.
//
// Loaders return either the full record collection or a *LoadError; a load
// failure is never reported as an empty collection. HTTPLoader adds the
// request timeout and optional retry that a remote upstream needs, and
// FileLoader reads the same JSON array from disk.
package fetch
