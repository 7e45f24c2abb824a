package query

import (
	"csvsql/reader"
)

// Execute runs a parsed query against a loaded table.
//
// The pipeline is strictly ordered: the FROM table name is checked against
// the loaded table, the WHERE column is validated before any row is
// evaluated, surviving rows are counted or projected, and the relative order
// of filtered rows is preserved throughout. The table is never mutated.
func Execute(tbl *reader.Table, q *Query) (*Result, error) {
	if q.Table != tbl.Name {
		return nil, execErrorf("table %q not found, loaded table is %q", q.Table, tbl.Name)
	}

	rows := tbl.Rows
	if q.Where != nil {
		if !tbl.HasColumn(q.Where.Column) {
			return nil, execErrorf("column %q not found in table %q", q.Where.Column, tbl.Name)
		}
		var err error
		rows, err = ApplyFilter(rows, q.Where)
		if err != nil {
			return nil, err
		}
	}

	if q.Count != nil {
		return applyCount(tbl, rows, q.Count)
	}

	return applyProjection(tbl, rows, q)
}

// applyCount produces the single-row result of a COUNT query. COUNT(*)
// counts every surviving row; COUNT(column) counts surviving rows whose
// value for the column is neither nil nor an empty string.
func applyCount(tbl *reader.Table, rows []map[string]interface{}, agg *Aggregate) (*Result, error) {
	count := int64(0)

	if agg.Column == "*" {
		count = int64(len(rows))
	} else {
		if !tbl.HasColumn(agg.Column) {
			return nil, execErrorf("column %q not found in table %q", agg.Column, tbl.Name)
		}
		for _, row := range rows {
			value := row[agg.Column]
			if value != nil && value != "" {
				count++
			}
		}
	}

	label := agg.Label()
	return &Result{
		Columns: []string{label},
		Rows:    []map[string]interface{}{{label: count}},
	}, nil
}

// applyProjection reduces rows to the selected columns. The wildcard keeps
// every column in the table's original order; an explicit list fails on the
// first unknown column, otherwise keeps exactly the requested columns in
// requested order.
func applyProjection(tbl *reader.Table, rows []map[string]interface{}, q *Query) (*Result, error) {
	if q.Star {
		return &Result{
			Columns: append([]string(nil), tbl.Columns...),
			Rows:    rows,
		}, nil
	}

	for _, col := range q.Columns {
		if !tbl.HasColumn(col) {
			return nil, execErrorf("column %q not found in table %q", col, tbl.Name)
		}
	}

	projected := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		newRow := make(map[string]interface{}, len(q.Columns))
		for _, col := range q.Columns {
			newRow[col] = row[col]
		}
		projected = append(projected, newRow)
	}

	return &Result{
		Columns: append([]string(nil), q.Columns...),
		Rows:    projected,
	}, nil
}
