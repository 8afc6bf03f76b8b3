package cli

import (
	"context"
	"fmt"
	"strconv"

	"task-manager/internal/errors"
	"task-manager/internal/usecase"
	"task-manager/internal/validation"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	deleteTask   *usecase.DeleteTask
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		deleteTask:   app.deleteTask,
		validator:    app.validator,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the delete command. Deleting an ID that does not exist
// succeeds; deletion is idempotent all the way down.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.errorHandler.Handle("delete task", errors.NewInvalidInputError("id", args[0], "must be a number"))
	}

	if err := c.validator.ValidateTaskID(id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	if err := c.deleteTask.Execute(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task: ID %d\n", id)
	return nil
}
