package core

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExpressionString(t *testing.T) {
	tests := []struct {
		expr     Expression
		expected string
	}{
		{ColumnRef{Name: "age"}, "age"},
		{IntegerLiteral{Value: 42}, "42"},
		{StringLiteral{Value: "green"}, "'green'"},
		{BooleanLiteral{Value: true}, "TRUE"},
		{Wildcard{}, "*"},
		{
			UnaryExpr{Op: OpUnaryMinus, Operand: ColumnRef{Name: "a"}},
			"(-a)",
		},
		{
			UnaryExpr{Op: OpNot, Operand: BooleanLiteral{Value: false}},
			"(NOT FALSE)",
		},
		{
			BinaryExpr{
				Op:    OpAdd,
				Left:  BinaryExpr{Op: OpMultiply, Left: ColumnRef{Name: "age"}, Right: IntegerLiteral{Value: 5}},
				Right: IntegerLiteral{Value: 1},
			},
			"((age * 5) + 1)",
		},
	}

	for _, test := range tests {
		if actual := test.expr.String(); actual != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, actual)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dataType DataType
		expected string
	}{
		{DataType{Kind: IntType}, "INT"},
		{DataType{Kind: VarcharType, Length: 255}, "VARCHAR(255)"},
		{DataType{Kind: BoolType}, "BOOL"},
	}

	for _, test := range tests {
		if actual := test.dataType.String(); actual != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, actual)
		}
	}
}

func TestStatementJSON(t *testing.T) {
	stmt := SelectStatement{
		Columns: []Expression{ColumnRef{Name: "name"}},
		Table:   "users",
		Where: BinaryExpr{
			Op:    OpGreaterThanOrEqual,
			Left:  ColumnRef{Name: "age"},
			Right: IntegerLiteral{Value: 18},
		},
		OrderBy: []OrderByExpr{
			{Expr: ColumnRef{Name: "name"}, Direction: Descending},
		},
	}

	data, err := json.Marshal(stmt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Operators and directions serialize as their SQL spelling.
	for _, want := range []string{`"op":">="`, `"direction":"DESC"`, `"table":"users"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected JSON to contain %s, got %s", want, data)
		}
	}
}

func TestFormat(t *testing.T) {
	stmt := SelectStatement{
		Columns: []Expression{ColumnRef{Name: "name"}},
		Table:   "users",
		Where: BinaryExpr{
			Op:    OpAnd,
			Left:  BinaryExpr{Op: OpGreaterThan, Left: ColumnRef{Name: "one"}, Right: IntegerLiteral{Value: 1}},
			Right: BinaryExpr{Op: OpLessThan, Left: ColumnRef{Name: "two"}, Right: IntegerLiteral{Value: 1}},
		},
	}

	out := Format(stmt)

	for _, want := range []string{"SELECT", "table: users", "BinaryOp(AND)", "Column(one)", "Integer(1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected formatted tree to contain %q:\n%s", want, out)
		}
	}

	create := CreateTableStatement{
		Table: "t",
		Columns: []Column{
			{
				Name: "id",
				Type: DataType{Kind: IntType},
				Constraints: []Constraint{
					{Kind: PrimaryKey},
					{Kind: CheckConstraint, Check: BinaryExpr{
						Op:    OpGreaterThan,
						Left:  ColumnRef{Name: "id"},
						Right: IntegerLiteral{Value: 0},
					}},
				},
			},
		},
	}

	out = Format(create)
	for _, want := range []string{"CREATE TABLE", "id INT", "PRIMARY KEY", "CHECK:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected formatted tree to contain %q:\n%s", want, out)
		}
	}
}
