package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"csvsql/query"
)

// TableFormatter renders results as an aligned text grid with a header row.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the result as a text grid. An empty result produces no
// output; the caller decides how to announce it.
func (t *TableFormatter) Format(res *query.Result) error {
	if len(res.Rows) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(res.Columns)
	table.SetAutoFormatHeaders(false)

	records := make([][]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		record := make([]string, len(res.Columns))
		for i, col := range res.Columns {
			record[i] = cellString(row[col])
		}
		records = append(records, record)
	}

	table.AppendBulk(records)
	table.Render()
	return nil
}
