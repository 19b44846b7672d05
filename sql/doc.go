// Package sql provides SQL lexing and parsing for minisql.
//
// The package includes a lexer that tokenizes SQL strings and a parser that
// produces abstract syntax trees for SELECT and CREATE TABLE statements.
// Expressions are parsed by precedence climbing, so operator precedence and
// associativity need no extra grammar rules.
//
// # Lexer Usage
//
//	lexer := sql.NewLexer("SELECT * FROM users")
//	for {
//	    token, err := lexer.NextToken()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if token.Type == sql.EOF {
//	        break
//	    }
//	    fmt.Printf("%s at %s\n", token, token.Pos)
//	}
//
// # Parser Usage
//
//	parser := sql.NewParser("SELECT name FROM users WHERE age >= 18")
//	statement, err := parser.Parse()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Parse failures are typed and matched with errors.As:
//   - InvalidCharacterError, UnterminatedStringError (lexical)
//   - UnexpectedTokenError, UnmatchedParenthesisError, MissingClauseError,
//     InvalidTypeArgumentError, InvalidConstraintError (syntactic)
//   - UnsupportedStatementError (dispatch)
//
// The first error aborts the parse and is returned with the offending
// position; there is never a partial tree.
package sql
