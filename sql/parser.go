package sql

import (
	"strconv"

	"minisql/core"
)

// Parser turns one SQL statement into a core.Statement. A Parser holds no
// state between Parse calls beyond its token cursor; each statement gets a
// fresh Parser and concurrent parses of independent inputs need no
// coordination.
type Parser struct {
	lexer *Lexer
	token Token
}

func NewParser(sql string) *Parser {
	return &Parser{lexer: NewLexer(sql)}
}

// advance moves the cursor to the next token, surfacing lexical errors.
func (parser *Parser) advance() error {
	token, err := parser.lexer.NextToken()
	if err != nil {
		return err
	}
	parser.token = token
	return nil
}

// Parse consumes the whole input and returns exactly one statement. The
// first error aborts the parse; no partial tree is returned.
func (parser *Parser) Parse() (core.Statement, error) {
	if err := parser.advance(); err != nil {
		return nil, err
	}

	var statement core.Statement
	var err error

	switch parser.token.Type {
	case Select:
		statement, err = parser.parseSelect()
	case Create:
		statement, err = parser.parseCreateTable()
	default:
		return nil, &UnsupportedStatementError{Token: parser.token}
	}
	if err != nil {
		return nil, err
	}

	if parser.token.Type == Semicolon {
		if err := parser.advance(); err != nil {
			return nil, err
		}
	}
	if parser.token.Type != EOF {
		return nil, &UnexpectedTokenError{Expected: []string{"end of statement"}, Found: parser.token}
	}

	return statement, nil
}

// parseSelect parses the clause sequence
// SELECT columns FROM table [WHERE expr] [ORDER BY expr [ASC|DESC], ...].
func (parser *Parser) parseSelect() (core.Statement, error) {
	var statement core.SelectStatement

	if err := parser.advance(); err != nil { // consume SELECT
		return nil, err
	}

	switch parser.token.Type {
	case From, Semicolon, EOF:
		return nil, &MissingClauseError{Clause: "column list"}
	case Asterisk:
		// `*` is a wildcard only in the first column position; everywhere
		// else it is multiplication.
		statement.Columns = append(statement.Columns, core.Wildcard{})
		if err := parser.advance(); err != nil {
			return nil, err
		}
	default:
		expr, err := parser.parseExpression(0)
		if err != nil {
			return nil, err
		}
		statement.Columns = append(statement.Columns, expr)
	}

	for parser.token.Type == Comma {
		if err := parser.advance(); err != nil {
			return nil, err
		}
		expr, err := parser.parseExpression(0)
		if err != nil {
			return nil, err
		}
		statement.Columns = append(statement.Columns, expr)
	}

	if parser.token.Type != From {
		return nil, &MissingClauseError{Clause: "FROM"}
	}
	if err := parser.advance(); err != nil {
		return nil, err
	}

	if parser.token.Type != Identifier {
		return nil, &UnexpectedTokenError{Expected: []string{"table name"}, Found: parser.token}
	}
	statement.Table = parser.token.Value
	if err := parser.advance(); err != nil {
		return nil, err
	}

	if parser.token.Type == Where {
		if err := parser.advance(); err != nil {
			return nil, err
		}
		where, err := parser.parseExpression(0)
		if err != nil {
			return nil, err
		}
		statement.Where = where
	}

	if parser.token.Type == Order {
		if err := parser.advance(); err != nil {
			return nil, err
		}
		if parser.token.Type != By {
			return nil, &UnexpectedTokenError{Expected: []string{"BY"}, Found: parser.token}
		}
		if err := parser.advance(); err != nil {
			return nil, err
		}
		orderBy, err := parser.parseOrderBy()
		if err != nil {
			return nil, err
		}
		statement.OrderBy = orderBy
	}

	return statement, nil
}

func (parser *Parser) parseOrderBy() ([]core.OrderByExpr, error) {
	var orderBy []core.OrderByExpr

	for {
		expr, err := parser.parseExpression(0)
		if err != nil {
			return nil, err
		}

		direction := core.Ascending
		switch parser.token.Type {
		case Asc:
			if err := parser.advance(); err != nil {
				return nil, err
			}
		case Desc:
			direction = core.Descending
			if err := parser.advance(); err != nil {
				return nil, err
			}
		}

		orderBy = append(orderBy, core.OrderByExpr{Expr: expr, Direction: direction})

		if parser.token.Type != Comma {
			return orderBy, nil
		}
		if err := parser.advance(); err != nil {
			return nil, err
		}
	}
}

// parseCreateTable parses CREATE TABLE name (column-def, ...).
func (parser *Parser) parseCreateTable() (core.Statement, error) {
	if err := parser.advance(); err != nil { // consume CREATE
		return nil, err
	}
	if parser.token.Type != Table {
		return nil, &UnsupportedStatementError{Token: parser.token}
	}
	if err := parser.advance(); err != nil {
		return nil, err
	}

	if parser.token.Type != Identifier {
		return nil, &UnexpectedTokenError{Expected: []string{"table name"}, Found: parser.token}
	}
	table := parser.token.Value
	if err := parser.advance(); err != nil {
		return nil, err
	}

	if parser.token.Type != ParenOpen {
		return nil, &UnexpectedTokenError{Expected: []string{"'('"}, Found: parser.token}
	}
	if err := parser.advance(); err != nil {
		return nil, err
	}

	if parser.token.Type == ParenClose {
		return nil, &MissingClauseError{Clause: "column definitions"}
	}

	var columns []core.Column
	for {
		column, err := parser.parseColumnDef()
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)

		if parser.token.Type != Comma {
			break
		}
		if err := parser.advance(); err != nil {
			return nil, err
		}
	}

	if parser.token.Type != ParenClose {
		return nil, &MissingClauseError{Clause: "')'"}
	}
	if err := parser.advance(); err != nil {
		return nil, err
	}

	return core.CreateTableStatement{Table: table, Columns: columns}, nil
}

// parseColumnDef parses `name data-type constraint...`; constraints are
// consumed greedily until a ',' or ')'.
func (parser *Parser) parseColumnDef() (core.Column, error) {
	if parser.token.Type != Identifier {
		return core.Column{}, &UnexpectedTokenError{Expected: []string{"column name"}, Found: parser.token}
	}
	name := parser.token.Value
	if err := parser.advance(); err != nil {
		return core.Column{}, err
	}

	dataType, err := parser.parseDataType()
	if err != nil {
		return core.Column{}, err
	}

	constraints, err := parser.parseConstraints()
	if err != nil {
		return core.Column{}, err
	}

	return core.Column{Name: name, Type: dataType, Constraints: constraints}, nil
}

func (parser *Parser) parseDataType() (core.DataType, error) {
	switch parser.token.Type {
	case Int:
		if err := parser.advance(); err != nil {
			return core.DataType{}, err
		}
		return core.DataType{Kind: core.IntType}, nil

	case Bool:
		if err := parser.advance(); err != nil {
			return core.DataType{}, err
		}
		return core.DataType{Kind: core.BoolType}, nil

	case Varchar:
		if err := parser.advance(); err != nil {
			return core.DataType{}, err
		}
		if parser.token.Type != ParenOpen {
			return core.DataType{}, &InvalidTypeArgumentError{
				Reason: "VARCHAR requires a parenthesized length",
				Pos:    parser.token.Pos,
			}
		}
		if err := parser.advance(); err != nil {
			return core.DataType{}, err
		}
		if parser.token.Type != Number {
			return core.DataType{}, &InvalidTypeArgumentError{
				Reason: "VARCHAR length must be an integer",
				Pos:    parser.token.Pos,
			}
		}
		length, err := strconv.Atoi(parser.token.Value)
		if err != nil || length <= 0 {
			return core.DataType{}, &InvalidTypeArgumentError{
				Reason: "VARCHAR length must be a positive integer",
				Pos:    parser.token.Pos,
			}
		}
		if err := parser.advance(); err != nil {
			return core.DataType{}, err
		}
		if parser.token.Type != ParenClose {
			return core.DataType{}, &InvalidTypeArgumentError{
				Reason: "VARCHAR length missing closing parenthesis",
				Pos:    parser.token.Pos,
			}
		}
		if err := parser.advance(); err != nil {
			return core.DataType{}, err
		}
		return core.DataType{Kind: core.VarcharType, Length: length}, nil

	default:
		return core.DataType{}, &UnexpectedTokenError{
			Expected: []string{"INT", "VARCHAR", "BOOL"},
			Found:    parser.token,
		}
	}
}

// parseConstraints accepts PRIMARY KEY, NOT NULL and CHECK(expr) in any
// order. A column may carry several CHECK constraints; each is kept as its
// own entry in source order.
func (parser *Parser) parseConstraints() ([]core.Constraint, error) {
	var constraints []core.Constraint

	for {
		switch parser.token.Type {
		case Primary:
			if err := parser.advance(); err != nil {
				return nil, err
			}
			if parser.token.Type != Key {
				return nil, &UnexpectedTokenError{Expected: []string{"KEY"}, Found: parser.token}
			}
			if err := parser.advance(); err != nil {
				return nil, err
			}
			constraints = append(constraints, core.Constraint{Kind: core.PrimaryKey})

		case Not:
			if err := parser.advance(); err != nil {
				return nil, err
			}
			if parser.token.Type != Null {
				return nil, &UnexpectedTokenError{Expected: []string{"NULL"}, Found: parser.token}
			}
			if err := parser.advance(); err != nil {
				return nil, err
			}
			constraints = append(constraints, core.Constraint{Kind: core.NotNull})

		case Check:
			checkPos := parser.token.Pos
			if err := parser.advance(); err != nil {
				return nil, err
			}
			if parser.token.Type != ParenOpen {
				return nil, &InvalidConstraintError{
					Reason: "CHECK requires a parenthesized expression",
					Pos:    checkPos,
				}
			}
			openPos := parser.token.Pos
			if err := parser.advance(); err != nil {
				return nil, err
			}
			expr, err := parser.parseExpression(0)
			if err != nil {
				return nil, err
			}
			if parser.token.Type != ParenClose {
				return nil, &UnmatchedParenthesisError{Pos: openPos}
			}
			if err := parser.advance(); err != nil {
				return nil, err
			}
			constraints = append(constraints, core.Constraint{Kind: core.CheckConstraint, Check: expr})

		default:
			return constraints, nil
		}
	}
}
