// Package output provides output formatting for platform-cli.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table holds tabular data for rendering. Callers build tables
// explicitly; headers are conventionally upper-case.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends one row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table with aligned columns.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// TableFormatter formats data as an ASCII table.
type TableFormatter struct{}

// Format renders Table values; anything else falls back to indented
// JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch t := data.(type) {
	case *Table:
		return t.Render(w)
	case Table:
		return t.Render(w)
	default:
		return (&JSONFormatter{}).Format(w, data)
	}
}
