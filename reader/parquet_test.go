package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/parquet-go"
	"github.com/stretchr/testify/assert"
)

type user struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Age    int32   `parquet:"age"`
	Active bool    `parquet:"active"`
	Score  float64 `parquet:"score"`
}

func writeTempParquet(t *testing.T, rows []user) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.parquet")

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[user](file)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing fixture: %v", err)
	}

	return path
}

func TestLoadParquet(t *testing.T) {
	path := writeTempParquet(t, []user{
		{ID: 1, Name: "alice", Age: 30, Active: true, Score: 95.5},
		{ID: 2, Name: "bob", Age: 25, Active: false, Score: 82.3},
	})

	tbl, err := LoadParquet(path)
	assert.Nil(t, err)
	assert.Equal(t, "users", tbl.Name)
	assert.ElementsMatch(t, []string{"id", "name", "age", "active", "score"}, tbl.Columns)
	assert.Equal(t, 2, len(tbl.Rows))

	// Values are normalized into the engine's scalar set.
	assert.Equal(t, int64(30), tbl.Rows[0]["age"])
	assert.Equal(t, "alice", tbl.Rows[0]["name"])
	assert.Equal(t, float64(82.3), tbl.Rows[1]["score"])
	assert.Equal(t, "true", tbl.Rows[0]["active"])
	assert.Equal(t, "false", tbl.Rows[1]["active"])
}

func TestLoadParquet_MissingFile(t *testing.T) {
	tbl, err := LoadParquet(filepath.Join(t.TempDir(), "nope.parquet"))
	assert.NotNil(t, err)
	assert.Nil(t, tbl)
}

func TestLoadParquet_NotAParquetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.parquet")
	assert.Nil(t, os.WriteFile(path, []byte("not parquet"), 0o644))

	tbl, err := LoadParquet(path)
	assert.NotNil(t, err)
	assert.Nil(t, tbl)
}

func TestNormalizeScalar(t *testing.T) {
	assert.Equal(t, int64(7), normalizeScalar(int32(7)))
	assert.Equal(t, int64(7), normalizeScalar(uint16(7)))
	assert.Equal(t, float64(1.5), normalizeScalar(float32(1.5)))
	assert.Equal(t, "abc", normalizeScalar([]byte("abc")))
	assert.Equal(t, "true", normalizeScalar(true))
	assert.Nil(t, normalizeScalar(nil))
}
