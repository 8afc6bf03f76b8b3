package cli

import (
	"log/slog"

	"task-manager/internal/config"
	"task-manager/internal/store"
	"task-manager/internal/usecase"
	"task-manager/internal/validation"
)

// App bundles the use cases and shared collaborators the command
// handlers need.
type App struct {
	addTask    *usecase.AddTask
	listTasks  *usecase.ListTasks
	deleteTask *usecase.DeleteTask

	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
	config       *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(s store.Store, logger *slog.Logger, cfg *config.Config) *App {
	return &App{
		addTask:      usecase.NewAddTask(s, logger),
		listTasks:    usecase.NewListTasks(s, logger),
		deleteTask:   usecase.NewDeleteTask(s, logger),
		validator:    validation.NewTaskValidator(),
		errorHandler: NewErrorHandler(),
		config:       cfg,
	}
}
