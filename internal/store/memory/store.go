// Package memory provides an in-process task store. Contents are lost
// when the process exits; it is intended for ephemeral sessions and tests.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"task-manager/internal/domain"
	"task-manager/internal/store"
)

// MemoryStore implements the store.Store interface with an ordered
// in-process slice behind a mutex. Callers may issue operations from
// multiple goroutines; the TUI does.
type MemoryStore struct {
	mu     sync.Mutex
	tasks  []domain.Task
	logger *slog.Logger
}

var _ store.Store = (*MemoryStore)(nil)

// New creates a new in-memory store instance. A nil logger disables
// store-level debug events.
func New(logger *slog.Logger) *MemoryStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Info("in-memory store initialized")
	return &MemoryStore{logger: logger}
}

// AddTask stores the task and assigns its ID.
//
// The ID policy is max(existing IDs) + 1, or 1 when the store is empty.
// It is not a monotonic counter: after deleting the highest-ID task the
// freed ID is handed out again, and deleting below the maximum can make
// the next add collide with a surviving ID. The reuse is part of the
// store's observable contract.
func (s *MemoryStore) AddTask(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	task.ID = maxID + 1
	s.tasks = append(s.tasks, *task)
	s.logger.Debug("task added to memory store", "id", task.ID, "description", task.Description)
	return nil
}

// ListTasks returns a copy of all stored tasks in insertion order.
func (s *MemoryStore) ListTasks(_ context.Context) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Task, len(s.tasks))
	for i := range s.tasks {
		t := s.tasks[i]
		out[i] = &t
	}
	return out, nil
}

// DeleteTask removes the task with the given ID, preserving the relative
// order of the survivors. Absence of a match is not an error.
func (s *MemoryStore) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	removed := false
	for _, t := range s.tasks {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	if removed {
		s.logger.Debug("task deleted from memory store", "id", id)
	}
	return nil
}

// Close releases the store. The in-memory store holds no external
// resources, so this is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
