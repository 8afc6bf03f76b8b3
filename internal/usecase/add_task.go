// Package usecase contains the application use cases. Each use case is a
// thin orchestration over a store.Store plus an observability event; any
// store failure propagates unchanged to the caller.
package usecase

import (
	"context"
	"log/slog"

	"task-manager/internal/domain"
	"task-manager/internal/store"
)

// AddTask is the use case for creating a new task.
type AddTask struct {
	store  store.Store
	logger *slog.Logger
}

// NewAddTask creates a new AddTask use case. A nil logger disables
// logging.
func NewAddTask(s store.Store, logger *slog.Logger) *AddTask {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AddTask{store: s, logger: logger}
}

// Execute persists a task with the given description and returns it with
// its store-assigned ID.
//
// Blank descriptions are accepted here; rejecting them is a front-end
// responsibility, and the store happily persists whatever it is handed.
func (uc *AddTask) Execute(ctx context.Context, description string) (*domain.Task, error) {
	task := domain.NewTask(description)
	if err := uc.store.AddTask(ctx, &task); err != nil {
		return nil, err
	}

	uc.logger.Info("task added", "description", description)
	return &task, nil
}
