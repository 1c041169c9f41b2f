package prompt

import "github.com/charmbracelet/lipgloss"

// Styles used by the terminal prompts
type Styles struct {
	Title  lipgloss.Style
	Hint   lipgloss.Style
	Cursor lipgloss.Style
	Answer lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Answer: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
