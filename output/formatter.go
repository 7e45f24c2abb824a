// Package output provides formatters for rendering query results.
//
// Supported formats:
//   - Table: an aligned text grid with a header row, for interactive use
//   - JSON Lines: one JSON object per line
//   - CSV: comma-separated values with a header row
//
// All formatters honor the column order recorded in the result, which the
// row maps cannot preserve on their own.
package output

import (
	"fmt"
	"io"
	"strconv"

	"csvsql/query"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes the result in the formatter's specific format
	Format(res *query.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// cellString converts a scalar to its display string. Absent values render
// as the empty string.
func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
