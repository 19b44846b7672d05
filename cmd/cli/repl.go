package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v6/osfs"

	"minisql/core"
	"minisql/script"
	"minisql/sql"
)

// repl holds the interactive session state
type repl struct {
	history     []string
	historyFile string
	showTokens  bool
}

func newRepl() *repl {
	r := &repl{historyFile: historyPath()}
	r.loadHistory()
	return r
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minisql_history")
}

func (r *repl) run() {
	printBanner()

	reader := bufio.NewReader(os.Stdin)
	var multiLineBuffer strings.Builder

	for {
		fmt.Print(r.prompt(multiLineBuffer.Len() > 0))

		input, err := reader.ReadString('\n')
		if err != nil {
			successColor.Println("\nGoodbye!")
			r.saveHistory()
			return
		}

		input = strings.TrimSuffix(input, "\n")
		input = strings.TrimSuffix(input, "\r")

		if strings.TrimSpace(input) == "" {
			continue
		}

		// Dot commands only apply outside multi-line mode
		if multiLineBuffer.Len() == 0 && strings.HasPrefix(strings.TrimSpace(input), ".") {
			if r.handleCommand(strings.TrimSpace(input)) {
				continue
			}
		}

		// Accumulate until the statement ends with a semicolon
		multiLineBuffer.WriteString(input)
		trimmed := strings.TrimSpace(multiLineBuffer.String())
		if !strings.HasSuffix(trimmed, ";") {
			multiLineBuffer.WriteString(" ")
			continue
		}
		multiLineBuffer.Reset()

		r.addToHistory(trimmed)
		r.eval(trimmed)
	}
}

func printBanner() {
	fmt.Println()
	promptColor.Printf("minisql v%s\n", Version)
	fmt.Println("Type .help for commands, .quit to exit")
	fmt.Println()
}

func (r *repl) prompt(multiLine bool) string {
	if multiLine {
		return promptColor.Sprint("   ...> ")
	}
	return promptColor.Sprint("minisql> ")
}

func (r *repl) eval(input string) {
	if r.showTokens {
		tokens, err := sql.Tokenize(input)
		if err != nil {
			errorColor.Printf("✗ %v\n", err)
			return
		}
		for _, token := range tokens {
			if token.Type == sql.EOF {
				break
			}
			fmt.Printf("%-24s %s\n", token, token.Pos)
		}
		return
	}

	stmt, err := sql.NewParser(input).Parse()
	if err != nil {
		errorColor.Printf("✗ %v\n", err)
		return
	}
	fmt.Println(core.Format(stmt))
}

// handleCommand processes a dot command; it always consumes the input.
func (r *repl) handleCommand(input string) bool {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return true
	}

	switch parts[0] {
	case ".quit", ".exit", ".q":
		successColor.Println("Goodbye!")
		r.saveHistory()
		os.Exit(0)

	case ".help", ".h", ".?":
		printHelp()

	case ".tokens":
		r.showTokens = !r.showTokens
		if r.showTokens {
			successColor.Println("✓ Showing token streams")
		} else {
			successColor.Println("✓ Showing syntax trees")
		}

	case ".read":
		// Preserve the original case of the path argument
		args := strings.Fields(input)
		if len(args) > 1 {
			r.readFile(args[1])
		} else {
			errorColor.Println("✗ Usage: .read <file.sql>")
		}

	case ".history":
		r.printHistory()

	case ".clear", ".cls":
		fmt.Print("\033[H\033[2J")

	case ".version":
		fmt.Printf("minisql version %s\n", Version)

	default:
		errorColor.Printf("✗ Unknown command: %s (type .help for commands)\n", parts[0])
	}

	return true
}

func printHelp() {
	fmt.Println()
	promptColor.Println("Special Commands:")
	fmt.Println("  .help, .h        Show this help message")
	fmt.Println("  .quit, .exit     Exit the REPL")
	fmt.Println("  .tokens          Toggle between syntax trees and token streams")
	fmt.Println("  .read <file>     Parse every statement in a SQL script")
	fmt.Println("  .history         Show command history")
	fmt.Println("  .clear           Clear the screen")
	fmt.Println("  .version         Show version info")
	fmt.Println()
	promptColor.Println("SQL Statements:")
	fmt.Println("  SELECT <exprs> FROM <table> [WHERE <expr>] [ORDER BY <expr> [ASC|DESC], ...];")
	fmt.Println("  CREATE TABLE <table> (<column> <type> [constraints], ...);")
	fmt.Println()
	promptColor.Println("Types:")
	fmt.Println("  INT, VARCHAR(n), BOOL")
	fmt.Println()
	promptColor.Println("Constraints:")
	fmt.Println("  PRIMARY KEY, NOT NULL, CHECK (<expr>)")
	fmt.Println()
}

func (r *repl) readFile(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		errorColor.Printf("✗ %v\n", err)
		return
	}

	statements, err := script.Load(osfs.New("/"), abs)
	if err != nil {
		errorColor.Printf("✗ %v\n", err)
		return
	}

	for i, stmt := range statements {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(core.Format(stmt))
	}
	successColor.Printf("✓ %d statement(s) parsed\n", len(statements))
}

func (r *repl) addToHistory(cmd string) {
	// Don't add duplicates of the last command
	if len(r.history) > 0 && r.history[len(r.history)-1] == cmd {
		return
	}
	r.history = append(r.history, cmd)

	if len(r.history) > 1000 {
		r.history = r.history[len(r.history)-1000:]
	}
}

func (r *repl) printHistory() {
	if len(r.history) == 0 {
		fmt.Println("No command history")
		return
	}

	start := 0
	if len(r.history) > 20 {
		start = len(r.history) - 20
	}

	for i := start; i < len(r.history); i++ {
		fmt.Printf("  %3d  %s\n", i+1, r.history[i])
	}
}

func (r *repl) loadHistory() {
	if r.historyFile == "" {
		return
	}

	file, err := os.Open(r.historyFile)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		r.history = append(r.history, scanner.Text())
	}
}

func (r *repl) saveHistory() {
	if r.historyFile == "" {
		return
	}

	file, err := os.Create(r.historyFile)
	if err != nil {
		return
	}
	defer file.Close()

	start := 0
	if len(r.history) > 1000 {
		start = len(r.history) - 1000
	}

	for i := start; i < len(r.history); i++ {
		_, _ = file.WriteString(r.history[i] + "\n")
	}
}
