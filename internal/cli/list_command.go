package cli

import (
	"context"
	"fmt"

	"task-manager/internal/usecase"
)

// ListCommand handles the list command
type ListCommand struct {
	listTasks    *usecase.ListTasks
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		listTasks:    app.listTasks,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the list command, printing one task per line.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.listTasks.Execute(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	for _, task := range tasks {
		fmt.Printf("%4d  %s\n", task.ID, task.Description)
	}
	return nil
}
