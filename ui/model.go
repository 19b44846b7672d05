package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"minisql/core"
	"minisql/sql"
)

// Model is the interactive parser workbench: a query editor on top, the
// parsed syntax tree (or token stream) below.
type Model struct {
	editor  textarea.Model
	output  viewport.Model
	help    help.Model
	keys    keyMap
	width   int
	height  int
	showHelp   bool
	showTokens bool
	lastInput  string
	lastError  error
}

func NewModel() Model {
	ta := textarea.New()
	ta.Placeholder = "Enter a SQL statement..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = true
	ta.SetHeight(5)
	ta.Focus()

	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()

	vp := viewport.New(80, 14)
	vp.Style = treeStyle

	return Model{
		editor: ta,
		output: vp,
		help:   help.New(),
		keys:   keys,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Parse):
			m.lastInput = m.editor.Value()
			m.refreshOutput()

		case key.Matches(msg, m.keys.Tokens):
			m.showTokens = !m.showTokens
			m.refreshOutput()

		case key.Matches(msg, m.keys.Clear):
			m.editor.SetValue("")
			m.lastInput = ""
			m.lastError = nil
			m.output.SetContent("")

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	m.output, cmd = m.output.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refreshOutput re-parses the last submitted input and renders either the
// syntax tree or the token stream into the viewport.
func (m *Model) refreshOutput() {
	input := strings.TrimSpace(m.lastInput)
	if input == "" {
		m.output.SetContent(mutedStyle.Render("Nothing parsed yet."))
		return
	}

	header := Highlight(input) + "\n\n"

	if m.showTokens {
		m.output.SetContent(header + m.renderTokens(input))
		return
	}

	stmt, err := sql.NewParser(input).Parse()
	m.lastError = err
	if err != nil {
		m.output.SetContent(header + errorStyle.Render("✗ "+err.Error()))
		return
	}
	m.output.SetContent(header + core.Format(stmt))
}

func (m Model) renderTokens(input string) string {
	tokens, err := sql.Tokenize(input)
	if err != nil {
		return errorStyle.Render("✗ " + err.Error())
	}

	var b strings.Builder
	for _, token := range tokens {
		if token.Type == sql.EOF {
			break
		}
		fmt.Fprintf(&b, "%-24s %s\n", token, mutedStyle.Render(token.Pos.String()))
	}
	return b.String()
}

func (m *Model) updateLayout() {
	width := m.width - 6
	if width < 20 {
		width = 20
	}
	m.editor.SetWidth(width)
	m.output.Width = width

	height := m.height - m.editor.Height() - 8
	if height < 5 {
		height = 5
	}
	m.output.Height = height
}

func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("minisql"))
	sections = append(sections, m.editor.View())
	sections = append(sections, m.output.View())
	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.help.FullHelpView([][]key.Binding{
			{m.keys.Parse, m.keys.Tokens, m.keys.Clear},
			{m.keys.ScrollUp, m.keys.ScrollDown},
			{m.keys.Help, m.keys.Quit},
		}))
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderStatusBar() string {
	mode := "tree"
	if m.showTokens {
		mode = "tokens"
	}
	status := fmt.Sprintf("view: %s │ ctrl+r parse │ ctrl+t tokens │ ctrl+h help │ ctrl+c quit", mode)
	if m.lastError != nil {
		status = "parse failed │ " + status
	}
	return statusBarStyle.Render(status)
}

// Run starts the terminal UI and blocks until the user quits.
func Run() error {
	program := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
