package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table writes the page as a bordered text table followed by a pagination
// footer. Nested values are rendered through paths.
func Table(w io.Writer, page Page, paths map[string]string) error {
	if page.Result.Empty() || len(page.Columns) == 0 {
		if _, err := fmt.Fprintln(w, EmptyMessage); err != nil {
			return err
		}
		return writeFooter(w, page)
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(Headers(page.Columns, page.State))
	table.SetAutoWrapText(false)
	for _, rec := range page.Result.Records {
		table.Append(Row(page.Columns, rec, paths))
	}
	table.Render()

	return writeFooter(w, page)
}

func writeFooter(w io.Writer, page Page) error {
	line := Footer(page.Result.Meta)
	if nav := Navigation(page.Result.Meta); nav != "" {
		line += "  " + nav
	}
	if page.State.SearchTerm != "" {
		line += fmt.Sprintf("  search: %q", page.State.SearchTerm)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
