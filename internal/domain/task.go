package domain

import "fmt"

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          int64
	Description string
}

// NewTask creates a new Task with the given description.
// The ID is left unset; the store assigns it at insertion time.
func NewTask(description string) Task {
	return Task{
		Description: description,
	}
}

// IsPersisted reports whether the task has been assigned an identifier.
func (t Task) IsPersisted() bool {
	return t.ID != 0
}

// String returns the task in "id: description" form for display purposes.
func (t Task) String() string {
	return fmt.Sprintf("%d: %s", t.ID, t.Description)
}
