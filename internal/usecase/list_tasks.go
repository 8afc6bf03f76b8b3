package usecase

import (
	"context"
	"log/slog"

	"task-manager/internal/domain"
	"task-manager/internal/store"
)

// ListTasks is the use case for listing all tasks.
type ListTasks struct {
	store  store.Store
	logger *slog.Logger
}

// NewListTasks creates a new ListTasks use case. A nil logger disables
// logging.
func NewListTasks(s store.Store, logger *slog.Logger) *ListTasks {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ListTasks{store: s, logger: logger}
}

// Execute returns the store's tasks unchanged.
func (uc *ListTasks) Execute(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := uc.store.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("tasks listed", "count", len(tasks))
	return tasks, nil
}
