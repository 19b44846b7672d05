// Package core defines the abstract syntax tree produced by the minisql
// parser.
//
// The package defines the Statement variants (SelectStatement,
// CreateTableStatement), the Expression tree, and the column model
// (Column, DataType, Constraint). Values are constructed once by the parser
// and never mutated afterwards; they hold owned copies of every identifier
// and literal, so a tree stays valid after the input text is gone.
//
// # Expression Trees
//
// Expression is a tagged interface; switch on the concrete type (or on
// Kind()) to walk a tree:
//
//	switch e := expr.(type) {
//	case core.BinaryExpr:
//	    walk(e.Left)
//	    walk(e.Right)
//	case core.ColumnRef:
//	    fmt.Println(e.Name)
//	}
//
// # Formatting
//
// Format renders a statement as an indented tree for terminal display:
//
//	stmt, _ := sql.NewParser("SELECT name FROM users").Parse()
//	fmt.Print(core.Format(stmt))
package core
