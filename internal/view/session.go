package view

import (
	"github.com/rs/zerolog"

	"github.com/rshade/usertable/internal/records"
)

// Session owns one record store and one view state and exposes the intents a
// UI layer forwards. Every intent applies Transition and recomputes the view.
// A Session is not safe for concurrent use; the UI drives it from one goroutine.
type Session struct {
	store    *records.Store
	pipeline Pipeline
	state    State
	current  Result
	logger   zerolog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for intent tracing.
func WithLogger(logger zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session over store starting from state.
func NewSession(store *records.Store, schema Schema, state State, opts ...SessionOption) *Session {
	s := &Session{
		store:    store,
		pipeline: NewPipeline(schema),
		state:    state,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.PageSize = NormalizePageSize(s.state.PageSize)
	if s.state.SortOrder == "" {
		s.state.SortOrder = Ascending
	}
	s.Refresh()
	return s
}

// State returns the current view state.
func (s *Session) State() State {
	return s.state
}

// Result returns the most recently computed view.
func (s *Session) Result() Result {
	return s.current
}

// Columns returns the table columns, taken from the first record.
func (s *Session) Columns() []string {
	return s.store.FieldNames()
}

// Schema returns the search and sort restrictions of the session.
func (s *Session) Schema() Schema {
	return s.pipeline.Schema
}

// Refresh recomputes the view, for instance after the store has been loaded.
func (s *Session) Refresh() Result {
	s.current = s.pipeline.Query(s.store, s.state)
	s.state.CurrentPage = s.current.Meta.CurrentPage
	return s.current
}

// Dispatch applies an intent and returns the recomputed view.
func (s *Session) Dispatch(in Intent) Result {
	before := s.state
	s.state = Transition(s.state, in, s.current.Meta.PageCount, s.pipeline.Schema)
	result := s.Refresh()

	s.logger.Debug().
		Str("component", "view").
		Str("intent", in.Kind.String()).
		Bool("changed", before != s.state).
		Int("page", result.Meta.CurrentPage).
		Int("page_count", result.Meta.PageCount).
		Int("matching", result.Meta.TotalMatching).
		Msg("intent applied")
	return result
}

// SetSearchTerm replaces the search term.
func (s *Session) SetSearchTerm(term string) Result {
	return s.Dispatch(SetSearchTerm(term))
}

// ToggleSort sorts by field, flipping the direction when it is already active.
func (s *Session) ToggleSort(field string) Result {
	return s.Dispatch(ToggleSort(field))
}

// GoToPage moves to page n; out-of-range pages are ignored.
func (s *Session) GoToPage(n int) Result {
	return s.Dispatch(GoToPage(n))
}

// NextPage moves forward one page when possible.
func (s *Session) NextPage() Result {
	return s.Dispatch(NextPage())
}

// PreviousPage moves back one page when possible.
func (s *Session) PreviousPage() Result {
	return s.Dispatch(PreviousPage())
}
