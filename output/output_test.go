package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"csvsql/query"
)

func sampleResult() *query.Result {
	return &query.Result{
		Columns: []string{"name", "age", "score"},
		Rows: []map[string]interface{}{
			{"name": "Alice", "age": int64(32), "score": float64(91.5)},
			{"name": "Bob", "age": int64(28), "score": nil},
		},
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)

	assert.Nil(t, f.Format(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "32")
	assert.Contains(t, out, "91.5")
}

func TestTableFormatter_PreservesHeaderCase(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)

	res := &query.Result{
		Columns: []string{"COUNT(*)"},
		Rows:    []map[string]interface{}{{"COUNT(*)": int64(2)}},
	}
	assert.Nil(t, f.Format(res))
	assert.Contains(t, buf.String(), "COUNT(*)")
}

func TestTableFormatter_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)

	assert.Nil(t, f.Format(&query.Result{Columns: []string{"name"}}))
	assert.Equal(t, "", buf.String())
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)

	assert.Nil(t, f.Format(sampleResult()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 3, len(lines))
	// Header follows result column order, not map iteration order.
	assert.Equal(t, "name,age,score", lines[0])
	assert.Equal(t, "Alice,32,91.5", lines[1])
	assert.Equal(t, "Bob,28,", lines[2])
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	assert.Nil(t, f.Format(sampleResult()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 2, len(lines))

	var row map[string]interface{}
	assert.Nil(t, json.Unmarshal([]byte(lines[0]), &row))
	assert.Equal(t, "Alice", row["name"])
	assert.Equal(t, float64(32), row["age"])
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	f := NewCSVFormatter(&first)
	f.SetOutput(&second)

	assert.Nil(t, f.Format(sampleResult()))
	assert.Equal(t, "", first.String())
	assert.NotEqual(t, "", second.String())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "abc", cellString("abc"))
	assert.Equal(t, "30", cellString(int64(30)))
	assert.Equal(t, "3.14", cellString(float64(3.14)))
}
