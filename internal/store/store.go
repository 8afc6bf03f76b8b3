// Package store defines the persistence contract for tasks.
// Two implementations exist: an in-memory store (memory) and a
// SQLite-backed store (sqlite), selected once at startup.
package store

import (
	"context"

	"task-manager/internal/domain"
)

// Store defines the interface for task persistence operations.
// Exactly one Store instance is active per application run; the owning
// process must call Close exactly once at shutdown.
type Store interface {
	// AddTask persists a task whose ID is unset, assigning it a
	// store-unique ID. The assigned ID is written onto the passed task.
	AddTask(ctx context.Context, task *domain.Task) error

	// ListTasks returns all stored tasks as an independent snapshot;
	// mutating the returned slice does not affect the store.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// DeleteTask removes the task with the given ID. Deleting an ID
	// that is not present is a no-op, not an error.
	DeleteTask(ctx context.Context, id int64) error

	// Close releases any resources held by the store.
	Close() error
}
