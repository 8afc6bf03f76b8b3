package tui

import (
	"fmt"
	"strings"
)

// View renders the TUI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Task Manager"))
	b.WriteString("\n\n")
	b.WriteString(m.taskList.View())
	b.WriteString("\n")

	switch m.mode {
	case ModeAdding:
		b.WriteString(m.styles.Prompt.Render("New task: "))
		b.WriteString(m.descInput.View())
		b.WriteString("\n")
	case ModeConfirmDelete:
		prompt := fmt.Sprintf("Delete %q? (y/n)", m.confirmLabel)
		b.WriteString(m.styles.Confirm.Render(prompt))
		b.WriteString("\n")
	default:
		if m.err != nil {
			b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
			b.WriteString("\n")
		} else if m.statusMsg != "" {
			b.WriteString(m.styles.Status.Render(m.statusMsg))
			b.WriteString("\n")
		}
	}

	if m.mode == ModeAdding && m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

// helpLine returns the footer keybinding summary for the current mode.
func (m *Model) helpLine() string {
	switch m.mode {
	case ModeAdding:
		return "enter: save • esc: cancel"
	case ModeConfirmDelete:
		return "y: delete • n: keep"
	default:
		return "a: add • d: delete • r: refresh • ↑/↓: move • q: quit"
	}
}
