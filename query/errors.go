package query

import "fmt"

// ParseError reports a statement that does not match the supported grammar.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func parseErrorf(format string, args ...interface{}) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// ExecutionError reports a well-formed query that is inconsistent with the
// loaded table, such as an unknown table or column, or a comparison between
// incompatible types.
type ExecutionError struct {
	Msg string
}

func (e *ExecutionError) Error() string {
	return e.Msg
}

func execErrorf(format string, args ...interface{}) error {
	return &ExecutionError{Msg: fmt.Sprintf(format, args...)}
}
