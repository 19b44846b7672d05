package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#8B5CF6")
	secondaryColor = lipgloss.Color("#22D3EE")
	errorColor     = lipgloss.Color("#F87171")

	bgDark   = lipgloss.Color("#0F172A")
	bgMedium = lipgloss.Color("#1E293B")

	textPrimary   = lipgloss.Color("#F8FAFC")
	textSecondary = lipgloss.Color("#CBD5E1")
	textMuted     = lipgloss.Color("#64748B")
)

// Styles for the UI components
var (
	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(textPrimary).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	treeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(bgMedium).
			Foreground(textSecondary).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(textMuted)

	// Highlighter styles
	keywordStyle    = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	numberStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24"))
	stringStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	identifierStyle = lipgloss.NewStyle().Foreground(textPrimary)
	operatorStyle   = lipgloss.NewStyle().Foreground(secondaryColor)
)
