// Package query provides SQL parsing and execution for a single in-memory table.
//
// It implements a restricted SQL dialect with SELECT, FROM, an optional
// single-condition WHERE clause, and COUNT aggregation. The package includes
// a lexer for tokenization, a recursive-descent parser for building Query
// values, and an executor that filters, aggregates, and projects rows.
//
// Example usage:
//
//	q, err := query.Parse("SELECT name FROM people WHERE age > 30")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := query.Execute(tbl, q)
package query

// TokenType represents the type of a token.
type TokenType int

const (
	// Keywords
	TokenSelect TokenType = iota
	TokenFrom
	TokenWhere
	TokenCount

	// Operators
	TokenEqual        // =
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Literals
	TokenString
	TokenNumber
	TokenIdent

	// Delimiters
	TokenStar       // *
	TokenComma      // ,
	TokenLeftParen  // (
	TokenRightParen // )

	// Special
	TokenEOF
	TokenError
)

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string
}

// Query represents a parsed SQL statement.
//
// Exactly one of Star, Count, or a non-empty Columns list is set; the
// grammar treats them as mutually exclusive select-list alternatives.
type Query struct {
	Columns []string   // Explicit column list, in statement order
	Star    bool       // SELECT *
	Count   *Aggregate // SELECT COUNT(...)
	Table   string     // FROM table name
	Where   *Condition // Optional WHERE condition
}

// Condition is a single column/operator/value comparison from a WHERE clause.
type Condition struct {
	Column string
	Op     TokenType // One of the comparison operator token types
	Value  interface{}
}

// Aggregate is a COUNT specification. Column is "*" for COUNT(*), otherwise
// the name of the counted column.
type Aggregate struct {
	Column string
}

// Label returns the output column label for the aggregate, e.g. "COUNT(*)".
func (a *Aggregate) Label() string {
	return "COUNT(" + a.Column + ")"
}

// Result holds the ordered output of an executed query. Columns records the
// output column order, which row maps cannot preserve on their own.
type Result struct {
	Columns []string
	Rows    []map[string]interface{}
}
