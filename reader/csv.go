package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadCSV loads a CSV file into a Table. The first record is the header row;
// every data cell is converted with parseScalar, so numeric-looking cells
// arrive in the engine already typed. The table name is the filename stem.
func LoadCSV(path string) (*Table, error) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return nil, fmt.Errorf("file %q is not a CSV file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("CSV file %q is empty or has no header row", path)
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	rows := make([]map[string]interface{}, 0)
	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		row := make(map[string]interface{}, len(header))
		for i, col := range header {
			row[col] = parseScalar(record[i])
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file %q has no data rows", path)
	}

	return &Table{
		Name:    tableName(path),
		Columns: header,
		Rows:    rows,
	}, nil
}

// parseScalar converts a textual CSV cell into the engine's scalar set.
// Empty cells become nil, integer literals become int64, other numeric
// literals become float64, and everything else stays a string.
func parseScalar(cell string) interface{} {
	if cell == "" {
		return nil
	}
	if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}
