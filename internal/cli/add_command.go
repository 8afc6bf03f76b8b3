package cli

import (
	"context"
	"fmt"
	"strings"

	"task-manager/internal/usecase"
	"task-manager/internal/validation"
)

// AddCommand handles the add command
type AddCommand struct {
	addTask      *usecase.AddTask
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		addTask:      app.addTask,
		validator:    app.validator,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the add command. Blank descriptions are rejected here;
// the use case itself accepts any string.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	description := strings.TrimSpace(strings.Join(args, " "))

	if err := c.validator.ValidateDescription(description); err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	task, err := c.addTask.Execute(ctx, description)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s\n", task.ID, task.Description)
	return nil
}
