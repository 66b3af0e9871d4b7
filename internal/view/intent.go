package view

// IntentKind identifies the user action behind an Intent.
type IntentKind int

const (
	// IntentSearch replaces the search term.
	IntentSearch IntentKind = iota
	// IntentToggleSort selects a sort column or flips its direction.
	IntentToggleSort
	// IntentGoToPage moves to a page.
	IntentGoToPage
	// IntentNextPage moves one page forward.
	IntentNextPage
	// IntentPreviousPage moves one page back.
	IntentPreviousPage
)

// String returns the intent name used in logs.
func (k IntentKind) String() string {
	switch k {
	case IntentSearch:
		return "search"
	case IntentToggleSort:
		return "toggle_sort"
	case IntentGoToPage:
		return "go_to_page"
	case IntentNextPage:
		return "next_page"
	case IntentPreviousPage:
		return "previous_page"
	default:
		return "unknown"
	}
}

// Intent is a user request to change the view state.
type Intent struct {
	Kind  IntentKind
	Term  string
	Field string
	Page  int
}

// SetSearchTerm builds a search intent.
func SetSearchTerm(term string) Intent {
	return Intent{Kind: IntentSearch, Term: term}
}

// ToggleSort builds a sort toggle intent for field.
func ToggleSort(field string) Intent {
	return Intent{Kind: IntentToggleSort, Field: field}
}

// GoToPage builds a page change intent.
func GoToPage(page int) Intent {
	return Intent{Kind: IntentGoToPage, Page: page}
}

// NextPage builds an intent for the following page.
func NextPage() Intent {
	return Intent{Kind: IntentNextPage}
}

// PreviousPage builds an intent for the preceding page.
func PreviousPage() Intent {
	return Intent{Kind: IntentPreviousPage}
}

// Transition applies in to s and returns the new state. pageCount is the page
// count of the result currently displayed; it bounds page changes.
//
//   - search: replaces the term and returns to the first page
//   - toggle sort: the active key flips direction, a new key starts ascending;
//     empty fields and fields outside the sortable set are ignored
//   - page changes: out-of-range requests leave the page unchanged
func Transition(s State, in Intent, pageCount int, schema Schema) State {
	switch in.Kind {
	case IntentSearch:
		if in.Term != s.SearchTerm {
			s.SearchTerm = in.Term
			s.CurrentPage = FirstPage
		}
	case IntentToggleSort:
		if in.Field == "" || !schema.Sortable(in.Field) {
			return s
		}
		if in.Field == s.SortKey {
			s.SortOrder = s.SortOrder.Toggle()
		} else {
			s.SortKey = in.Field
			s.SortOrder = Ascending
		}
	case IntentGoToPage:
		s.CurrentPage = ChangePage(s.CurrentPage, in.Page, pageCount)
	case IntentNextPage:
		s.CurrentPage = ChangePage(s.CurrentPage, s.CurrentPage+1, pageCount)
	case IntentPreviousPage:
		s.CurrentPage = ChangePage(s.CurrentPage, s.CurrentPage-1, pageCount)
	}
	return s
}
