package render

import (
	"encoding/json"
	"io"

	"github.com/rshade/usertable/internal/records"
	"github.com/rshade/usertable/internal/view"
)

type jsonPage struct {
	Columns []string         `json:"columns"`
	Records []records.Record `json:"records"`
	Meta    view.Meta        `json:"meta"`
	State   view.State       `json:"state"`
}

// JSON writes the page as an indented JSON document with the keys
// columns, records, meta and state.
func JSON(w io.Writer, page Page) error {
	out := jsonPage{
		Columns: page.Columns,
		Records: page.Result.Records,
		Meta:    page.Result.Meta,
		State:   page.State,
	}
	if out.Columns == nil {
		out.Columns = []string{}
	}
	if out.Records == nil {
		out.Records = []records.Record{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
