package main

import (
	"flag"
	"fmt"
	"os"

	"csvsql/output"
	"csvsql/query"
	"csvsql/reader"
	"csvsql/repl"
)

var (
	queryFlag  = flag.String("q", "", "SQL query to run (e.g. \"SELECT * FROM data WHERE age > 30\")")
	formatFlag = flag.String("f", "table", "Output format: table, json, csv")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file.csv|file.parquet]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to run SQL queries against CSV and parquet files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s people.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q \"SELECT name FROM people WHERE age > 30\" people.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q \"SELECT COUNT(*) FROM people\" -f json people.csv\n", os.Args[0])
	}

	flag.Parse()

	// One-shot query mode
	if *queryFlag != "" {
		if flag.NArg() < 1 {
			fmt.Fprintf(os.Stderr, "Error: missing data file argument\n\n")
			flag.Usage()
			os.Exit(1)
		}
		if err := runQuery(flag.Arg(0), *queryFlag, *formatFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Interactive mode, optionally preloading a file
	r := repl.New(os.Stdout)
	if flag.NArg() >= 1 {
		r.Load(flag.Arg(0))
	}
	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runQuery loads a data file, executes one statement against it, and writes
// the result to stdout in the requested format.
func runQuery(filename, statement, format string) error {
	var formatter output.Formatter
	switch format {
	case "table":
		formatter = output.NewTableFormatter(os.Stdout)
	case "json", "jsonl":
		formatter = output.NewJSONFormatter(os.Stdout)
	case "csv":
		formatter = output.NewCSVFormatter(os.Stdout)
	default:
		return fmt.Errorf("unsupported format %q, expected table, json, or csv", format)
	}

	tbl, err := reader.Load(filename)
	if err != nil {
		return err
	}

	q, err := query.Parse(statement)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	res, err := query.Execute(tbl, q)
	if err != nil {
		return err
	}

	return formatter.Format(res)
}
