package query

import (
	"strconv"
	"strings"
)

// Parser parses a token stream into a Query.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// current returns the current token.
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.pos++
}

// Parse parses a SQL statement into a Query. The same input always yields
// the same Query or the same *ParseError; no state is shared between calls.
func Parse(statement string) (*Query, error) {
	if strings.TrimSpace(statement) == "" {
		return nil, parseErrorf("empty statement")
	}

	tokens := Tokenize(statement)
	for _, tok := range tokens {
		if tok.Type == TokenError {
			if tok.Value == unterminatedLiteral {
				return nil, parseErrorf("%s", unterminatedLiteral)
			}
			return nil, parseErrorf("unexpected character %q in statement", tok.Value)
		}
	}

	parser := NewParser(tokens)
	q, err := parser.parseQuery()
	if err != nil {
		return nil, err
	}

	if parser.current().Type != TokenEOF {
		return nil, parseErrorf("unexpected token %q after end of statement", parser.current().Value)
	}

	return q, nil
}

// parseQuery parses: SELECT select_list FROM table [WHERE condition]
func (p *Parser) parseQuery() (*Query, error) {
	if p.current().Type != TokenSelect {
		return nil, parseErrorf("statement must start with SELECT")
	}
	p.advance()

	q := &Query{}
	if err := p.parseSelectList(q); err != nil {
		return nil, err
	}

	if p.current().Type != TokenFrom {
		if p.current().Type == TokenEOF {
			return nil, parseErrorf("missing FROM clause")
		}
		return nil, parseErrorf("expected FROM after select list, got %q", p.current().Value)
	}
	p.advance()

	table := p.current()
	if table.Type != TokenIdent {
		if table.Type == TokenEOF {
			return nil, parseErrorf("missing table name in FROM clause")
		}
		return nil, parseErrorf("invalid table name %q in FROM clause", table.Value)
	}
	q.Table = table.Value
	p.advance()

	if p.current().Type == TokenWhere {
		p.advance()
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		q.Where = cond
	}

	return q, nil
}

// parseSelectList parses the select-list alternatives: '*', COUNT(...), or an
// explicit column list. The alternatives are mutually exclusive; COUNT is
// detected first, then the wildcard, then the column list.
func (p *Parser) parseSelectList(q *Query) error {
	switch p.current().Type {
	case TokenCount:
		p.advance()
		agg, err := p.parseCountArgument()
		if err != nil {
			return err
		}
		q.Count = agg
		return nil

	case TokenStar:
		p.advance()
		q.Star = true
		return nil
	}

	seen := make(map[string]bool)
	for {
		col := p.current()
		if col.Type != TokenIdent {
			if col.Type == TokenEOF {
				return parseErrorf("missing select list after SELECT")
			}
			return parseErrorf("invalid column name %q in select list", col.Value)
		}
		if seen[col.Value] {
			return parseErrorf("duplicate column %q in select list", col.Value)
		}
		seen[col.Value] = true
		q.Columns = append(q.Columns, col.Value)
		p.advance()

		if p.current().Type != TokenComma {
			return nil
		}
		p.advance()
	}
}

// parseCountArgument parses the parenthesized argument of COUNT.
func (p *Parser) parseCountArgument() (*Aggregate, error) {
	if p.current().Type != TokenLeftParen {
		return nil, parseErrorf("expected ( after COUNT, got %q", p.current().Value)
	}
	p.advance()

	arg := p.current()
	var column string
	switch arg.Type {
	case TokenStar:
		column = "*"
	case TokenIdent:
		column = arg.Value
	default:
		return nil, parseErrorf("invalid COUNT argument %q, expected * or a column name", arg.Value)
	}
	p.advance()

	if p.current().Type != TokenRightParen {
		return nil, parseErrorf("expected ) after COUNT argument, got %q", p.current().Value)
	}
	p.advance()

	return &Aggregate{Column: column}, nil
}

// parseCondition parses a WHERE condition: column operator value.
func (p *Parser) parseCondition() (*Condition, error) {
	col := p.current()
	if col.Type != TokenIdent {
		if col.Type == TokenEOF {
			return nil, parseErrorf("WHERE clause is missing a condition")
		}
		return nil, parseErrorf("invalid column name %q in WHERE clause", col.Value)
	}
	p.advance()

	op := p.current()
	switch op.Type {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
	case TokenEOF:
		return nil, parseErrorf("WHERE clause is missing a comparison operator")
	default:
		return nil, parseErrorf("invalid comparison operator %q in WHERE clause", op.Value)
	}
	p.advance()

	val := p.current()
	var value interface{}
	switch val.Type {
	case TokenString:
		value = val.Value
	case TokenNumber:
		num, err := parseNumber(val.Value)
		if err != nil {
			return nil, err
		}
		value = num
	case TokenEOF:
		return nil, parseErrorf("WHERE clause is missing a comparison value")
	default:
		return nil, parseErrorf("invalid comparison value %q in WHERE clause, use single quotes for strings", val.Value)
	}
	p.advance()

	return &Condition{Column: col.Value, Op: op.Type, Value: value}, nil
}

// parseNumber converts a numeric literal to int64 when it has no fractional
// part, and to float64 otherwise.
func parseNumber(literal string) (interface{}, error) {
	if strings.Contains(literal, ".") {
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, parseErrorf("invalid numeric literal %q", literal)
		}
		return f, nil
	}

	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return nil, parseErrorf("invalid numeric literal %q", literal)
	}
	return n, nil
}
