package tui

import "task-manager/internal/domain"

// MsgTasksLoaded carries a freshly loaded task list.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
}

// MsgTaskAdded reports a successfully persisted task.
type MsgTaskAdded struct {
	Task *domain.Task
}

// MsgTaskDeleted reports a completed delete operation.
type MsgTaskDeleted struct {
	ID int64
}

// MsgError carries an error to display.
type MsgError struct {
	Err error
}
