package view

// State is the current search, sort and pagination configuration of a view.
type State struct {
	SearchTerm  string `json:"search_term"  yaml:"search_term"`
	SortKey     string `json:"sort_key"     yaml:"sort_key"`
	SortOrder   Order  `json:"sort_order"   yaml:"sort_order"`
	CurrentPage int    `json:"current_page" yaml:"current_page"`
	PageSize    int    `json:"page_size"    yaml:"page_size"`
}

// NewState returns the initial state: no search, unsorted, first page.
func NewState(pageSize int) State {
	return State{
		SortOrder:   Ascending,
		CurrentPage: FirstPage,
		PageSize:    NormalizePageSize(pageSize),
	}
}

// Sorted reports whether a sort key is active.
func (s State) Sorted() bool {
	return s.SortKey != ""
}

// SortIndicator returns the arrow for field when it is the active sort key, or "".
func (s State) SortIndicator(field string) string {
	if !s.Sorted() || field != s.SortKey {
		return ""
	}
	return s.SortOrder.Arrow()
}
