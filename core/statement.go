package core

import "strconv"

type StatementType int

const (
	SelectStatementType StatementType = iota
	CreateTableStatementType
)

// Statement is a fully parsed SQL statement.
type Statement interface {
	Type() StatementType
}

// Direction orders an ORDER BY expression.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// OrderByExpr pairs an ORDER BY expression with its direction. The direction
// defaults to Ascending when the statement omits it.
type OrderByExpr struct {
	Expr      Expression `json:"expr"`
	Direction Direction  `json:"direction"`
}

type SelectStatement struct {
	Columns []Expression  `json:"columns"`
	Table   string        `json:"table"`
	Where   Expression    `json:"where,omitempty"`
	OrderBy []OrderByExpr `json:"orderBy,omitempty"`
}

func (s SelectStatement) Type() StatementType {
	return SelectStatementType
}

type CreateTableStatement struct {
	Table   string   `json:"table"`
	Columns []Column `json:"columns"`
}

func (s CreateTableStatement) Type() StatementType {
	return CreateTableStatementType
}
