// Package repl implements the interactive command loop: LOAD a data file,
// run SQL statements against it, and render the results as a text grid.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"csvsql/output"
	"csvsql/query"
	"csvsql/reader"
)

const helpText = `Commands:
  LOAD <filepath>   Load a CSV or parquet file
  HELP              Show this help message
  EXIT or QUIT      Exit

SQL syntax (keywords are case-insensitive):
  SELECT col1, col2, ... | * | COUNT(*) | COUNT(col) FROM table [WHERE condition]

WHERE operators: =  !=  >  <  >=  <=
Values: single-quoted strings ('USA') or unquoted numbers (30, 3.14)

Examples:
  LOAD people.csv
  SELECT * FROM people
  SELECT name, age FROM people WHERE age > 30
  SELECT COUNT(*) FROM people WHERE country = 'USA'`

// REPL holds the loop state: at most one resident table, replaced wholesale
// by each LOAD.
type REPL struct {
	table *reader.Table
	out   io.Writer
}

// New creates a REPL writing its output to w.
func New(w io.Writer) *REPL {
	return &REPL{out: w}
}

// Load loads a data file as the resident table, discarding any previous one.
func (r *REPL) Load(path string) {
	tbl, err := reader.Load(path)
	if err != nil {
		fmt.Fprintf(r.out, "Error loading file: %v\n", err)
		return
	}

	r.table = tbl
	fmt.Fprintf(r.out, "Loaded %q: table %q, %d rows\n", path, tbl.Name, len(tbl.Rows))
	fmt.Fprintf(r.out, "Columns: %s\n", strings.Join(tbl.Columns, ", "))
}

// Run reads and dispatches lines until EXIT, interrupt, or EOF.
func (r *REPL) Run() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     "/tmp/csvsql_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer func() { _ = l.Close() }()

	fmt.Fprintln(r.out, "Welcome to csvsql. Type HELP for usage.")

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Fprintf(r.out, "Error while reading line: %v\n", err)
			continue
		}

		if !r.Dispatch(line) {
			return nil
		}
	}
}

// Dispatch handles one input line. It returns false when the loop should
// stop. Commands are case-insensitive; anything that is not a command is
// treated as a SQL statement.
func (r *REPL) Dispatch(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}

	upper := strings.ToUpper(trimmed)
	switch {
	case upper == "EXIT" || upper == "QUIT":
		return false
	case upper == "HELP":
		fmt.Fprintln(r.out, helpText)
	case strings.HasPrefix(upper, "LOAD "):
		r.Load(strings.TrimSpace(trimmed[len("LOAD "):]))
	default:
		r.executeSQL(trimmed)
	}

	return true
}

// executeSQL parses and executes one statement against the resident table.
// Parse and execution errors are printed and the loop continues; one failed
// statement cannot affect the next.
func (r *REPL) executeSQL(statement string) {
	if r.table == nil {
		fmt.Fprintln(r.out, "No table loaded. Use LOAD <filepath> first.")
		return
	}

	q, err := query.Parse(statement)
	if err != nil {
		fmt.Fprintf(r.out, "Parse Error: %v\n", err)
		return
	}

	res, err := query.Execute(r.table, q)
	if err != nil {
		var execErr *query.ExecutionError
		if errors.As(err, &execErr) {
			fmt.Fprintf(r.out, "Execution Error: %v\n", err)
		} else {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
		return
	}

	if len(res.Rows) == 0 {
		fmt.Fprintln(r.out, "(no results)")
		return
	}

	formatter := output.NewTableFormatter(r.out)
	if err := formatter.Format(res); err != nil {
		fmt.Fprintf(r.out, "Error formatting output: %v\n", err)
		return
	}

	if len(res.Rows) == 1 {
		fmt.Fprintln(r.out, "(1 row)")
	} else {
		fmt.Fprintf(r.out, "(%d rows)\n", len(res.Rows))
	}
}
