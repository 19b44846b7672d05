package sql

import (
	"fmt"
	"strings"
)

// InvalidCharacterError reports a byte that matches no token rule.
type InvalidCharacterError struct {
	Char byte
	Pos  Position
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at %s", e.Char, e.Pos)
}

// UnterminatedStringError reports a string literal still open at end of
// input. Pos is the opening quote.
type UnterminatedStringError struct {
	Pos Position
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string starting at %s", e.Pos)
}

// UnexpectedTokenError reports a token that matched none of the accepted
// productions at its position. Expected names the accepted categories.
type UnexpectedTokenError struct {
	Expected []string
	Found    Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, found %s at %s",
		strings.Join(e.Expected, " or "), e.Found, e.Found.Pos)
}

// UnmatchedParenthesisError reports a '(' opened without a matching ')'.
// Pos is the opening parenthesis.
type UnmatchedParenthesisError struct {
	Pos Position
}

func (e *UnmatchedParenthesisError) Error() string {
	return fmt.Sprintf("unmatched parenthesis opened at %s", e.Pos)
}

// MissingClauseError reports an absent required keyword or clause.
type MissingClauseError struct {
	Clause string
}

func (e *MissingClauseError) Error() string {
	return fmt.Sprintf("missing %s", e.Clause)
}

// InvalidTypeArgumentError reports a malformed VARCHAR length.
type InvalidTypeArgumentError struct {
	Reason string
	Pos    Position
}

func (e *InvalidTypeArgumentError) Error() string {
	return fmt.Sprintf("%s at %s", e.Reason, e.Pos)
}

// InvalidConstraintError reports a CHECK constraint without its
// parenthesized expression.
type InvalidConstraintError struct {
	Reason string
	Pos    Position
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("%s at %s", e.Reason, e.Pos)
}

// UnsupportedStatementError reports a leading token that starts no known
// statement.
type UnsupportedStatementError struct {
	Token Token
}

func (e *UnsupportedStatementError) Error() string {
	if e.Token.Type == EOF {
		return "empty statement"
	}
	return fmt.Sprintf("unsupported statement starting with %s at %s", e.Token, e.Token.Pos)
}
