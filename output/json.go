package output

import (
	"encoding/json"
	"io"

	"csvsql/query"
)

// JSONFormatter outputs results as JSON Lines.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per result row.
func (j *JSONFormatter) Format(res *query.Result) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range res.Rows {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
