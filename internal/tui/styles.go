package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the TUI.
type Styles struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
	Help    lipgloss.Style
	Confirm lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Confirm: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")),
	}
}
