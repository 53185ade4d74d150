package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/akwilson/join"
)

// renderer writes merge values or join rows to w in the selected format.
// Text format prints values bare and rows as "(left,right)"; json format
// prints one JSON document per line.
type renderer struct {
	w      io.Writer
	format string
}

func newRenderer(w io.Writer, format string) *renderer {
	return &renderer{w: w, format: format}
}

type jsonValue struct {
	Value string `json:"value"`
}

type jsonRow struct {
	Left  *string `json:"left"`
	Right *string `json:"right"`
}

// Value writes one merged value.
func (r *renderer) Value(v string) error {
	if r.format == "json" {
		return r.writeJSON(jsonValue{Value: v})
	}
	_, err := fmt.Fprintln(r.w, v)
	return err
}

// Row writes one joined row. Absent sides render as "-" in text format and
// null in json format.
func (r *renderer) Row(row join.Row[string]) error {
	if r.format == "json" {
		var out jsonRow
		if v, ok := row.Left(); ok {
			out.Left = &v
		}
		if v, ok := row.Right(); ok {
			out.Right = &v
		}
		return r.writeJSON(out)
	}
	_, err := fmt.Fprintln(r.w, row.String())
	return err
}

func (r *renderer) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, string(data))
	return err
}
