package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"
)

// LoadParquet loads a parquet file into a Table. The entire file is read
// into memory; column order follows the parquet schema. Values are
// normalized into the engine's scalar set with normalizeScalar.
func LoadParquet(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	var columns []string
	for _, field := range pqFile.Schema().Fields() {
		columns = append(columns, field.Name())
	}

	pqReader := parquet.NewReader(pqFile)
	defer func() { _ = pqReader.Close() }()

	rows := make([]map[string]interface{}, 0)
	for {
		raw := make(map[string]interface{})
		err := pqReader.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(map[string]interface{}, len(raw))
		for col, value := range raw {
			row[col] = normalizeScalar(value)
		}
		rows = append(rows, row)
	}

	return &Table{
		Name:    tableName(path),
		Columns: columns,
		Rows:    rows,
	}, nil
}

// normalizeScalar maps the value types produced by the parquet reader onto
// the engine's scalar set. Integer widths widen to int64, floats to float64,
// byte slices and booleans become strings.
func normalizeScalar(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return val
	case []byte:
		return string(val)
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case int64:
		return val
	case uint:
		return int64(val)
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint64:
		return int64(val)
	case float32:
		return float64(val)
	case float64:
		return val
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
