package usecase

import (
	"context"
	"log/slog"

	"task-manager/internal/store"
)

// DeleteTask is the use case for deleting a task by ID.
type DeleteTask struct {
	store  store.Store
	logger *slog.Logger
}

// NewDeleteTask creates a new DeleteTask use case. A nil logger disables
// logging.
func NewDeleteTask(s store.Store, logger *slog.Logger) *DeleteTask {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DeleteTask{store: s, logger: logger}
}

// Execute deletes the task with the given ID. The event is emitted
// whether or not a matching task existed; deletion is idempotent.
func (uc *DeleteTask) Execute(ctx context.Context, id int64) error {
	if err := uc.store.DeleteTask(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("task deleted", "id", id)
	return nil
}
