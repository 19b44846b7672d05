package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v6/osfs"
	"github.com/urfave/cli/v2"

	"minisql/core"
	"minisql/script"
	"minisql/sql"
	"minisql/ui"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	promptColor  = color.New(color.FgHiCyan)
	errorColor   = color.New(color.FgHiRed)
	successColor = color.New(color.FgHiGreen)
)

func main() {
	app := &cli.App{
		Name:    "minisql",
		Usage:   "parse SQL statements and inspect their syntax trees",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "eval",
				Aliases: []string{"e"},
				Usage:   "parse a single statement and exit",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "parse every statement in a SQL script and exit",
			},
			&cli.BoolFlag{
				Name:  "tokens",
				Usage: "print the token stream instead of the syntax tree",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print syntax trees as JSON",
			},
			&cli.BoolFlag{
				Name:  "tui",
				Usage: "open the interactive terminal workbench",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		errorColor.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("tui") {
		return ui.Run()
	}

	if input := c.String("eval"); input != "" {
		return evalStatement(c, input)
	}

	if path := c.String("file"); path != "" {
		return evalScript(c, path)
	}

	repl := newRepl()
	repl.run()
	return nil
}

func evalStatement(c *cli.Context, input string) error {
	if c.Bool("tokens") {
		return printTokens(input)
	}

	stmt, err := sql.NewParser(input).Parse()
	if err != nil {
		return err
	}
	return printStatement(stmt, c.Bool("json"))
}

func evalScript(c *cli.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	statements, err := script.Load(osfs.New("/"), abs)
	if err != nil {
		return err
	}

	for i, stmt := range statements {
		if i > 0 {
			fmt.Println()
		}
		if err := printStatement(stmt, c.Bool("json")); err != nil {
			return err
		}
	}

	successColor.Printf("✓ %d statement(s) parsed\n", len(statements))
	return nil
}

func printStatement(stmt core.Statement, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(stmt, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(core.Format(stmt))
	return nil
}

func printTokens(input string) error {
	tokens, err := sql.Tokenize(input)
	if err != nil {
		return err
	}

	for _, token := range tokens {
		if token.Type == sql.EOF {
			break
		}
		fmt.Printf("%-24s %s\n", token, token.Pos)
	}
	return nil
}
