package sql

import (
	"strconv"

	"minisql/core"
)

// Binding powers, lowest to highest. Unary prefix operators bind tighter
// than every binary operator.
const (
	precedenceOr = iota + 1
	precedenceAnd
	precedenceEquality
	precedenceRelational
	precedenceAdditive
	precedenceMultiplicative
	precedenceUnary
)

// binaryOperator maps an infix token to its operator and binding power.
func binaryOperator(tokenType TokenType) (core.BinaryOperator, int, bool) {
	switch tokenType {
	case Or:
		return core.OpOr, precedenceOr, true
	case And:
		return core.OpAnd, precedenceAnd, true
	case Equals:
		return core.OpEqual, precedenceEquality, true
	case NotEquals:
		return core.OpNotEqual, precedenceEquality, true
	case GreaterThan:
		return core.OpGreaterThan, precedenceRelational, true
	case GreaterThanOrEqual:
		return core.OpGreaterThanOrEqual, precedenceRelational, true
	case LessThan:
		return core.OpLessThan, precedenceRelational, true
	case LessThanOrEqual:
		return core.OpLessThanOrEqual, precedenceRelational, true
	case Plus:
		return core.OpAdd, precedenceAdditive, true
	case Minus:
		return core.OpSubtract, precedenceAdditive, true
	case Asterisk:
		return core.OpMultiply, precedenceMultiplicative, true
	case Slash:
		return core.OpDivide, precedenceMultiplicative, true
	default:
		return 0, 0, false
	}
}

// parseExpression parses one expression by precedence climbing. Operators
// bind only while their power exceeds minPrecedence, and the recursive call
// for the right operand passes the operator's own power, which makes every
// binary level left-associative. A token that cannot continue the current
// expression is left for the caller; the parser never invents an operator
// between adjacent expressions.
func (parser *Parser) parseExpression(minPrecedence int) (core.Expression, error) {
	left, err := parser.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		op, precedence, ok := binaryOperator(parser.token.Type)
		if !ok || precedence <= minPrecedence {
			return left, nil
		}

		if err := parser.advance(); err != nil {
			return nil, err
		}

		right, err := parser.parseExpression(precedence)
		if err != nil {
			return nil, err
		}

		left = core.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

// parsePrimary parses a literal, column reference, unary operation or
// parenthesized sub-expression.
func (parser *Parser) parsePrimary() (core.Expression, error) {
	token := parser.token

	switch token.Type {
	case Number:
		value, err := strconv.ParseInt(token.Value, 10, 64)
		if err != nil {
			return nil, &UnexpectedTokenError{Expected: []string{"integer literal"}, Found: token}
		}
		if err := parser.advance(); err != nil {
			return nil, err
		}
		return core.IntegerLiteral{Value: value}, nil

	case String:
		if err := parser.advance(); err != nil {
			return nil, err
		}
		return core.StringLiteral{Value: token.Value}, nil

	case Identifier:
		if err := parser.advance(); err != nil {
			return nil, err
		}
		return core.ColumnRef{Name: token.Value}, nil

	case True, False:
		if err := parser.advance(); err != nil {
			return nil, err
		}
		return core.BooleanLiteral{Value: token.Type == True}, nil

	case ParenOpen:
		if err := parser.advance(); err != nil {
			return nil, err
		}
		// Parentheses reset the precedence context.
		expr, err := parser.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if parser.token.Type != ParenClose {
			return nil, &UnmatchedParenthesisError{Pos: token.Pos}
		}
		if err := parser.advance(); err != nil {
			return nil, err
		}
		return expr, nil

	case Not, Plus, Minus:
		op := core.OpNot
		switch token.Type {
		case Plus:
			op = core.OpUnaryPlus
		case Minus:
			op = core.OpUnaryMinus
		}
		if err := parser.advance(); err != nil {
			return nil, err
		}
		operand, err := parser.parseExpression(precedenceUnary)
		if err != nil {
			return nil, err
		}
		return core.UnaryExpr{Op: op, Operand: operand}, nil

	default:
		return nil, &UnexpectedTokenError{
			Expected: []string{"literal", "column name", "unary operator", "'('"},
			Found:    token,
		}
	}
}
