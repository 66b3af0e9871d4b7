package render

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/usertable/internal/records"
	"github.com/rshade/usertable/internal/view"
)

// Page is one computed view together with the columns and state that produced it.
type Page struct {
	Columns []string
	Result  view.Result
	State   view.State
}

// NewPage snapshots the current page of a session.
func NewPage(s *view.Session) Page {
	return Page{
		Columns: s.Columns(),
		Result:  s.Result(),
		State:   s.State(),
	}
}

// EmptyMessage is shown in place of rows when nothing matches.
const EmptyMessage = "No users"

// Header returns the column heading for field: upper-cased, with an arrow
// when it is the active sort key.
func Header(field string, state view.State) string {
	h := strings.ToUpper(field)
	if arrow := state.SortIndicator(field); arrow != "" {
		h += " " + arrow
	}
	return h
}

// Headers returns the headings for every column.
func Headers(columns []string, state view.State) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = Header(c, state)
	}
	return out
}

// Row renders the cells of one record in column order.
func Row(columns []string, rec records.Record, paths map[string]string) []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i] = rec.Display(c, paths)
	}
	return row
}

// Footer summarizes pagination, e.g. "Page 2 of 13 · 11-20 of 1,234 users".
func Footer(meta view.Meta) string {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	b.WriteString(p.Sprintf("Page %d of %d", meta.CurrentPage, meta.PageCount))
	if meta.TotalMatching == 0 {
		b.WriteString(" · 0 users")
	} else {
		b.WriteString(p.Sprintf(" · %d-%d of %d users", meta.FirstIndex, meta.LastIndex, meta.TotalMatching))
	}
	if meta.TotalMatching != meta.TotalRecords {
		b.WriteString(p.Sprintf(" (filtered from %d)", meta.TotalRecords))
	}
	return b.String()
}

// Navigation describes which page moves are available, e.g. "‹ prev · next ›".
func Navigation(meta view.Meta) string {
	var parts []string
	if meta.HasPrevious {
		parts = append(parts, "‹ prev")
	}
	if meta.HasNext {
		parts = append(parts, "next ›")
	}
	return strings.Join(parts, " · ")
}
