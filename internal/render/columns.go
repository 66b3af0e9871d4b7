package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/rshade/usertable/internal/view"
)

// ColumnInfo describes one field of the collection.
type ColumnInfo struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Searchable bool   `json:"searchable"`
	Sortable   bool   `json:"sortable"`
}

// DescribeColumns reports which fields take part in search and sort under schema.
// Index is 1-based and matches the digit that sorts the column in the TUI.
func DescribeColumns(fields []string, schema view.Schema) []ColumnInfo {
	out := make([]ColumnInfo, len(fields))
	for i, f := range fields {
		out[i] = ColumnInfo{
			Index:      i + 1,
			Name:       f,
			Searchable: schema.Searchable(f),
			Sortable:   schema.Sortable(f),
		}
	}
	return out
}

// ColumnsTable writes the column list as a table.
func ColumnsTable(w io.Writer, columns []ColumnInfo) error {
	if len(columns) == 0 {
		_, err := fmt.Fprintln(w, "No columns")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"#", "FIELD", "SEARCHABLE", "SORTABLE"})
	for _, c := range columns {
		table.Append([]string{strconv.Itoa(c.Index), c.Name, yesNo(c.Searchable), yesNo(c.Sortable)})
	}
	table.Render()
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
