package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := New(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func addTask(t *testing.T, s *SQLiteStore, description string) *domain.Task {
	t.Helper()
	task := domain.NewTask(description)
	require.NoError(t, s.AddTask(context.Background(), &task))
	return &task
}

func TestAddTaskAssignsID(t *testing.T) {
	s := setupTestStore(t)

	task := addTask(t, s, "buy milk")
	assert.Greater(t, task.ID, int64(0))

	tasks, err := s.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, "buy milk", tasks[0].Description)
}

func TestIDsAreNeverReused(t *testing.T) {
	s := setupTestStore(t)

	first := addTask(t, s, "first")
	second := addTask(t, s, "second")
	assert.Greater(t, second.ID, first.ID)

	require.NoError(t, s.DeleteTask(context.Background(), second.ID))

	third := addTask(t, s, "third")
	assert.Greater(t, third.ID, second.ID)
}

func TestListTasksOrderedByID(t *testing.T) {
	s := setupTestStore(t)

	addTask(t, s, "a")
	addTask(t, s, "b")
	addTask(t, s, "c")

	tasks, err := s.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "a", tasks[0].Description)
	assert.Equal(t, "b", tasks[1].Description)
	assert.Equal(t, "c", tasks[2].Description)
	assert.Less(t, tasks[0].ID, tasks[1].ID)
	assert.Less(t, tasks[1].ID, tasks[2].ID)
}

func TestDeleteTaskKeepsSurvivors(t *testing.T) {
	s := setupTestStore(t)

	x := addTask(t, s, "x")
	y := addTask(t, s, "y")

	require.NoError(t, s.DeleteTask(context.Background(), x.ID))

	tasks, err := s.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, y.ID, tasks[0].ID)
	assert.Equal(t, "y", tasks[0].Description)
}

func TestDeleteTaskIsIdempotent(t *testing.T) {
	s := setupTestStore(t)

	addTask(t, s, "keep me")

	require.NoError(t, s.DeleteTask(context.Background(), 999))

	tasks, err := s.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestSchemaInitIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")

	s, err := New(dbPath, nil)
	require.NoError(t, err)

	task := addTask(t, s, "persist me")
	require.NoError(t, s.Close())

	// Reopen: the table already exists and its rows survive.
	reopened, err := New(dbPath, nil)
	require.NoError(t, err)
	defer reopened.Close()

	tasks, err := reopened.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, "persist me", tasks[0].Description)
}

func TestNewReportsStorageUnavailable(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "nested", "tasks.db"), nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorage))
}

func TestAddTaskAfterCloseFails(t *testing.T) {
	s, err := New(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	task := domain.NewTask("too late")
	err = s.AddTask(context.Background(), &task)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorage))
}
