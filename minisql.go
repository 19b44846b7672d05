package minisql

import (
	"minisql/core"
	"minisql/sql"
)

// Parse parses a single SQL statement. The trailing semicolon is optional.
func Parse(input string) (core.Statement, error) {
	return sql.NewParser(input).Parse()
}
