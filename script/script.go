package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v6"

	"minisql/core"
	"minisql/sql"
)

// Split breaks a buffer of SQL text into individual statements on ';'
// boundaries, ignoring semicolons inside string literals and -- comments.
// Returned statements keep their trailing semicolon; blank statements are
// dropped.
func Split(src string) []string {
	var statements []string
	var quote byte
	inComment := false
	start := 0

	for i := 0; i < len(src); i++ {
		ch := src[i]

		switch {
		case inComment:
			if ch == '\n' {
				inComment = false
			}
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == '-' && i+1 < len(src) && src[i+1] == '-':
			inComment = true
		case ch == ';':
			if stmt := strings.TrimSpace(src[start : i+1]); stmt != ";" && stmt != "" {
				statements = append(statements, stmt)
			}
			start = i + 1
		}
	}

	if rest := strings.TrimSpace(src[start:]); rest != "" && !isOnlyComments(rest) {
		statements = append(statements, rest)
	}

	return statements
}

// isOnlyComments reports whether every line of the remainder is blank or a
// -- comment, so a trailing comment block does not become a statement.
func isOnlyComments(src string) bool {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			return false
		}
	}
	return true
}

// LoadString parses every statement in src, in order. The first failure
// aborts the load; the error names the ordinal of the failing statement and
// wraps the parser's error unchanged.
func LoadString(src string) ([]core.Statement, error) {
	var statements []core.Statement

	for i, stmt := range Split(src) {
		parsed, err := sql.NewParser(stmt).Parse()
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i+1, err)
		}
		statements = append(statements, parsed)
	}

	return statements, nil
}

// Load reads a .sql file from fs and parses its statements.
func Load(fs billy.Filesystem, path string) ([]core.Statement, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return LoadString(string(data))
}
