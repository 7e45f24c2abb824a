// Package reader loads tabular data files into in-memory tables.
//
// It supports CSV files (via encoding/csv) and Apache Parquet files (via
// segmentio/parquet-go). Rows are returned as maps for flexible column
// access; values are normalized to the scalar set the query engine
// understands: string, int64, float64, and nil for absent values.
package reader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is one loaded dataset: a name derived from the source filename, the
// column names in header order, and the rows in file order.
//
// The engine holds at most one Table at a time and replaces it wholesale when
// a new file is loaded. Query execution treats a Table as read-only.
type Table struct {
	Name    string
	Columns []string
	Rows    []map[string]interface{}
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Load loads a data file into a Table, dispatching on the file extension.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".parquet":
		return LoadParquet(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected .csv or .parquet", filepath.Ext(path))
	}
}

// tableName derives the table name from the source filename, without the
// directory or extension.
func tableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
