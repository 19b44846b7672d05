// Package ui implements the terminal workbench for exploring parsed SQL.
//
// The workbench is a split view: a query editor on top and an output
// viewport below. Submitting a query with ctrl+r parses the editor's
// contents and renders the resulting syntax tree; ctrl+t switches the
// output to the raw token stream with source positions.
//
// # Usage
//
//	if err := ui.Run(); err != nil {
//		log.Fatal(err)
//	}
package ui
