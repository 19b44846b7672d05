// Package minisql parses a small SQL dialect into abstract syntax trees.
//
// The dialect covers SELECT (FROM, WHERE, ORDER BY) and CREATE TABLE with
// typed columns and PRIMARY KEY, NOT NULL and CHECK constraints. minisql
// only parses; it never executes a query or stores a schema.
//
// # Quick Start
//
//	stmt, err := minisql.Parse("SELECT name, age FROM users WHERE age >= 18")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(core.Format(stmt))
//
// The heavy lifting lives in the sql package (lexer and parser) and the
// core package (the syntax tree). The script package loads multi-statement
// .sql files, and cmd/cli and cmd/server wrap the parser in an interactive
// REPL and a TCP service.
package minisql
