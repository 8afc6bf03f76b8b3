package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and returns the updated model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve rows for the title, footer and status lines.
		m.taskList.SetSize(msg.Width, max(msg.Height-6, 1))
		return m, nil

	case MsgTasksLoaded:
		m.setTasks(msg.Tasks)
		m.err = nil
		return m, nil

	case MsgTaskAdded:
		m.statusMsg = "Added: " + msg.Task.Description
		m.err = nil
		return m, m.loadTasksCmd()

	case MsgTaskDeleted:
		m.statusMsg = "Task deleted"
		m.err = nil
		return m, m.loadTasksCmd()

	case MsgError:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAdding:
			return m.updateAdding(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// updateNormal handles keys in list-browsing mode.
func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdding
		m.statusMsg = ""
		m.err = nil
		m.descInput.SetValue("")
		m.descInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeConfirmDelete
		m.confirmTaskID = task.ID
		m.confirmLabel = task.Description
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTasksCmd()
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// updateAdding handles keys while the description input has focus.
func (m *Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.descInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		description := strings.TrimSpace(m.descInput.Value())
		if err := m.validator.ValidateDescription(description); err != nil {
			m.err = err
			return m, nil
		}
		m.mode = ModeNormal
		m.descInput.Blur()
		return m, m.addTaskCmd(description)
	}

	var cmd tea.Cmd
	m.descInput, cmd = m.descInput.Update(msg)
	return m, cmd
}

// updateConfirmDelete handles keys while a delete awaits confirmation.
func (m *Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.mode = ModeNormal
		return m, m.deleteTaskCmd(m.confirmTaskID)
	case "n", "N", "esc":
		m.mode = ModeNormal
		m.statusMsg = "Delete cancelled"
		return m, nil
	}
	return m, nil
}
