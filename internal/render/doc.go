// Package render writes a computed view page in non-interactive form: a plain
// table for humans or a JSON document for scripts. It also holds the header
// and footer helpers shared with the interactive TUI.
package render
