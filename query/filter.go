package query

import (
	"fmt"
	"strconv"
)

// evalCondition decides whether a row satisfies a condition, coercing the
// row's value toward the type of the condition literal.
//
// A nil row value never satisfies any comparison and is not an error; a
// column missing from the row's key set is an ExecutionError.
//
// When the literal is numeric and the row value cannot be coerced to a
// number, ordering comparisons fail with an ExecutionError, but = and !=
// fall back to comparing string forms. The fallback is inconsistent with
// the stricter ordering behavior and is kept on purpose; callers depend on
// it (see DESIGN.md).
func evalCondition(row map[string]interface{}, cond *Condition) (bool, error) {
	value, ok := row[cond.Column]
	if !ok {
		return false, execErrorf("column %q not found in row", cond.Column)
	}
	if value == nil {
		return false, nil
	}

	switch literal := cond.Value.(type) {
	case string:
		return compareStrings(stringify(value), cond.Op, literal), nil

	case int64, float64:
		litNum, _ := toFloat64(literal)
		rowNum, ok := toFloat64(value)
		if ok {
			return compareNumbers(rowNum, cond.Op, litNum), nil
		}
		if cond.Op == TokenEqual || cond.Op == TokenNotEqual {
			return compareStrings(stringify(value), cond.Op, stringify(literal)), nil
		}
		return false, execErrorf("cannot compare column %q value %q with %v", cond.Column, stringify(value), literal)

	default:
		return false, execErrorf("unsupported literal type %T in condition on column %q", cond.Value, cond.Column)
	}
}

// ApplyFilter keeps the rows satisfying cond, preserving their order.
// A nil condition keeps everything.
func ApplyFilter(rows []map[string]interface{}, cond *Condition) ([]map[string]interface{}, error) {
	if cond == nil {
		return rows, nil
	}

	filtered := make([]map[string]interface{}, 0)
	for _, row := range rows {
		match, err := evalCondition(row, cond)
		if err != nil {
			return nil, err
		}
		if match {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}

// toFloat64 converts a value to float64 if possible. Numeric-looking strings
// count: the loader leaves cells it cannot type as strings, and a condition
// like age > 30 must still see '30' as a number.
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// stringify renders a scalar in its string form for string comparisons.
func stringify(v interface{}) string {
	switch val := v.(type) {
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

// compareNumbers compares two numbers.
func compareNumbers(left float64, operator TokenType, right float64) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareStrings compares two strings. Equality is exact and case-sensitive;
// ordering is lexicographic.
func compareStrings(left string, operator TokenType, right string) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}
