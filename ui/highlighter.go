package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"minisql/sql"
)

// Highlight colorizes a SQL string using the real lexer, so the editor view
// and the parser always agree on what is a keyword, literal or operator.
// Input that fails to tokenize is returned unstyled.
func Highlight(input string) string {
	tokens, err := sql.Tokenize(input)
	if err != nil {
		return input
	}

	var b strings.Builder
	last := 0

	for _, token := range tokens {
		if token.Type == sql.EOF {
			break
		}

		start := token.Pos.Offset
		end := start + len(token.Value)
		if token.Type == sql.String {
			end += 2 // quote delimiters are not part of the value
		}

		// Whitespace and comments between tokens pass through untouched.
		b.WriteString(input[last:start])
		b.WriteString(styleToken(token).Render(input[start:end]))
		last = end
	}

	b.WriteString(input[last:])
	return b.String()
}

func styleToken(token sql.Token) lipgloss.Style {
	switch token.Type {
	case sql.Number:
		return numberStyle
	case sql.String:
		return stringStyle
	case sql.Identifier:
		return identifierStyle
	default:
		if sql.IsKeyword(token.Value) {
			return keywordStyle
		}
		return operatorStyle
	}
}
