package ui

import "github.com/charmbracelet/lipgloss"

// Styles controls how the editor is drawn.
type Styles struct {
	StatusBar lipgloss.Style
	Mode      lipgloss.Style

	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style
	EmptyLine     lipgloss.Style

	Cursor lipgloss.Style

	CommandLine lipgloss.Style
}

func DefaultStyles() Styles {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Styles{
		StatusBar:     lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		Mode:          lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Bold(true),
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		EmptyLine:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		CommandLine:   lipgloss.NewStyle(),
	}
}
