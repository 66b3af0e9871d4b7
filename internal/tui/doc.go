// Package tui provides the interactive Bubble Tea table for browsing records.
//
// The model starts in a loading state while the Loader runs, then drives a
// view.Session with the user's keystrokes: "/" searches, tab and shift+tab
// pick a column, s or a digit sorts, n and p page, q quits.
package tui
