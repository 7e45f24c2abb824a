package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"csvsql/query"
)

// CSVFormatter outputs results as CSV with a header row.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the result as CSV, columns in result order.
func (c *CSVFormatter) Format(res *query.Result) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(res.Columns); err != nil {
		return err
	}

	for _, row := range res.Rows {
		record := make([]string, len(res.Columns))
		for i, col := range res.Columns {
			record[i] = cellString(row[col])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
