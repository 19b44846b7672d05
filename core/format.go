package core

import (
	"fmt"
	"strings"
)

// Format renders a statement as an indented tree, one node per line. The
// output is what the CLI prints after a successful parse.
func Format(stmt Statement) string {
	var b strings.Builder

	switch s := stmt.(type) {
	case SelectStatement:
		b.WriteString("SELECT\n")
		b.WriteString("  columns:\n")
		for _, col := range s.Columns {
			writeExpr(&b, col, 2)
		}
		fmt.Fprintf(&b, "  table: %s\n", s.Table)
		if s.Where != nil {
			b.WriteString("  where:\n")
			writeExpr(&b, s.Where, 2)
		}
		if len(s.OrderBy) > 0 {
			b.WriteString("  order by:\n")
			for _, ob := range s.OrderBy {
				fmt.Fprintf(&b, "    %s:\n", ob.Direction)
				writeExpr(&b, ob.Expr, 3)
			}
		}
	case CreateTableStatement:
		b.WriteString("CREATE TABLE\n")
		fmt.Fprintf(&b, "  table: %s\n", s.Table)
		b.WriteString("  columns:\n")
		for _, col := range s.Columns {
			fmt.Fprintf(&b, "    %s %s\n", col.Name, col.Type)
			for _, c := range col.Constraints {
				if c.Kind == CheckConstraint {
					fmt.Fprintf(&b, "      CHECK:\n")
					writeExpr(&b, c.Check, 4)
				} else {
					fmt.Fprintf(&b, "      %s\n", c.Kind)
				}
			}
		}
	default:
		fmt.Fprintf(&b, "%+v\n", stmt)
	}

	return b.String()
}

func writeExpr(b *strings.Builder, expr Expression, depth int) {
	indent := strings.Repeat("  ", depth+1)

	switch e := expr.(type) {
	case BinaryExpr:
		fmt.Fprintf(b, "%sBinaryOp(%s)\n", indent, e.Op)
		writeExpr(b, e.Left, depth+1)
		writeExpr(b, e.Right, depth+1)
	case UnaryExpr:
		fmt.Fprintf(b, "%sUnaryOp(%s)\n", indent, e.Op)
		writeExpr(b, e.Operand, depth+1)
	case ColumnRef:
		fmt.Fprintf(b, "%sColumn(%s)\n", indent, e.Name)
	case IntegerLiteral:
		fmt.Fprintf(b, "%sInteger(%d)\n", indent, e.Value)
	case StringLiteral:
		fmt.Fprintf(b, "%sString(%q)\n", indent, e.Value)
	case BooleanLiteral:
		fmt.Fprintf(b, "%sBool(%v)\n", indent, e.Value)
	case Wildcard:
		fmt.Fprintf(b, "%sWildcard\n", indent)
	default:
		fmt.Fprintf(b, "%s%v\n", indent, expr)
	}
}
