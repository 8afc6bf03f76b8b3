package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"task-manager/internal/tui"
)

// TuiCommand handles the tui command
type TuiCommand struct {
	app *App
}

// NewTuiCommand creates a new tui command handler
func NewTuiCommand(app *App) *TuiCommand {
	return &TuiCommand{app: app}
}

// Execute starts the interactive terminal interface and blocks until the
// user quits.
func (c *TuiCommand) Execute(ctx context.Context, args []string) error {
	model := tui.New(c.app.addTask, c.app.listTasks, c.app.deleteTask)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
