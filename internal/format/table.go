package format

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"
)

// WriteTable renders a Tabler as an aligned table. Non-Tabler values fall
// back to JSON so `--format table` never errors on scalar results.
func WriteTable(w io.Writer, v any, pretty bool) error {
	tb, ok := v.(Tabler)
	if !ok {
		return WriteJSON(w, v, pretty)
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60

	tbl.AddRow(toAnyRow(tb.TableHeader())...)
	for _, row := range tb.TableRows() {
		tbl.AddRow(toAnyRow(row)...)
	}

	_, err := fmt.Fprintln(w, tbl)
	return err
}

func toAnyRow(cells []string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
