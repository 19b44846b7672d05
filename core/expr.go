package core

import "strconv"

// ExprKind tags the concrete variant of an Expression.
type ExprKind int

const (
	ColumnRefKind ExprKind = iota
	IntegerLiteralKind
	StringLiteralKind
	BooleanLiteralKind
	WildcardKind
	UnaryKind
	BinaryKind
)

// Expression is a node in a parsed expression tree. The concrete variants
// are ColumnRef, IntegerLiteral, StringLiteral, BooleanLiteral, Wildcard,
// UnaryExpr and BinaryExpr. Nodes own their values outright; nothing in an
// expression tree references the input text it was parsed from.
type Expression interface {
	Kind() ExprKind
	String() string
}

type BinaryOperator int

const (
	OpAdd BinaryOperator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpEqual
	OpNotEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpLessThanOrEqual
	OpAnd
	OpOr
)

func (op BinaryOperator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpGreaterThan:
		return ">"
	case OpGreaterThanOrEqual:
		return ">="
	case OpLessThan:
		return "<"
	case OpLessThanOrEqual:
		return "<="
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return "?"
	}
}

// MarshalJSON renders the operator as its SQL spelling so serialized trees
// stay readable.
func (op BinaryOperator) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(op.String())), nil
}

type UnaryOperator int

const (
	OpNot UnaryOperator = iota
	OpUnaryPlus
	OpUnaryMinus
)

func (op UnaryOperator) String() string {
	switch op {
	case OpNot:
		return "NOT"
	case OpUnaryPlus:
		return "+"
	case OpUnaryMinus:
		return "-"
	default:
		return "?"
	}
}

func (op UnaryOperator) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(op.String())), nil
}

// ColumnRef names a column of the selected table.
type ColumnRef struct {
	Name string `json:"column"`
}

func (ColumnRef) Kind() ExprKind { return ColumnRefKind }

func (e ColumnRef) String() string { return e.Name }

// IntegerLiteral is an integer constant.
type IntegerLiteral struct {
	Value int64 `json:"int"`
}

func (IntegerLiteral) Kind() ExprKind { return IntegerLiteralKind }

func (e IntegerLiteral) String() string { return strconv.FormatInt(e.Value, 10) }

// StringLiteral is a quoted string constant. Value excludes the delimiters.
type StringLiteral struct {
	Value string `json:"string"`
}

func (StringLiteral) Kind() ExprKind { return StringLiteralKind }

func (e StringLiteral) String() string { return "'" + e.Value + "'" }

// BooleanLiteral is a TRUE or FALSE constant.
type BooleanLiteral struct {
	Value bool `json:"bool"`
}

func (BooleanLiteral) Kind() ExprKind { return BooleanLiteralKind }

func (e BooleanLiteral) String() string {
	if e.Value {
		return "TRUE"
	}
	return "FALSE"
}

// Wildcard is the `*` column list entry of a SELECT. It is only produced in
// the first position of a column list; everywhere else `*` parses as
// multiplication.
type Wildcard struct{}

func (Wildcard) Kind() ExprKind { return WildcardKind }

func (Wildcard) String() string { return "*" }

// UnaryExpr applies a prefix operator to its operand.
type UnaryExpr struct {
	Op      UnaryOperator `json:"op"`
	Operand Expression    `json:"operand"`
}

func (UnaryExpr) Kind() ExprKind { return UnaryKind }

func (e UnaryExpr) String() string {
	if e.Op == OpNot {
		return "(NOT " + e.Operand.String() + ")"
	}
	return "(" + e.Op.String() + e.Operand.String() + ")"
}

// BinaryExpr applies an infix operator to two operands.
type BinaryExpr struct {
	Op    BinaryOperator `json:"op"`
	Left  Expression     `json:"left"`
	Right Expression     `json:"right"`
}

func (BinaryExpr) Kind() ExprKind { return BinaryKind }

func (e BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}
