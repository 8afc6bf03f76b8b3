package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	"task-manager/internal/store/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestAddThenList(t *testing.T) {
	s := memory.New(nil)
	add := NewAddTask(s, discardLogger())
	list := NewListTasks(s, discardLogger())

	task, err := add.Execute(context.Background(), "new task")
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "new task", task.Description)

	tasks, err := list.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "new task", tasks[0].Description)
}

func TestDeleteRemovesTask(t *testing.T) {
	s := memory.New(nil)
	add := NewAddTask(s, discardLogger())
	list := NewListTasks(s, discardLogger())
	del := NewDeleteTask(s, discardLogger())

	task, err := add.Execute(context.Background(), "task to delete")
	require.NoError(t, err)

	require.NoError(t, del.Execute(context.Background(), task.ID))

	tasks, err := list.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDeleteUnknownIDSucceeds(t *testing.T) {
	s := memory.New(nil)
	del := NewDeleteTask(s, discardLogger())

	assert.NoError(t, del.Execute(context.Background(), 42))
}

// AddTask is a pass-through: blank descriptions are not rejected here.
func TestAddAcceptsBlankDescription(t *testing.T) {
	s := memory.New(nil)
	add := NewAddTask(s, discardLogger())

	task, err := add.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "", task.Description)
}

// mockStore is a testify mock of the store.Store interface.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) AddTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *mockStore) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *mockStore) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestAddCallsStoreWithUnsetID(t *testing.T) {
	ms := &mockStore{}
	ms.On("AddTask", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Description == "mocked task" && task.ID == 0
	})).Return(nil).Once()

	add := NewAddTask(ms, discardLogger())
	_, err := add.Execute(context.Background(), "mocked task")
	require.NoError(t, err)

	ms.AssertExpectations(t)
}

func TestStoreFailuresPropagate(t *testing.T) {
	storeErr := errors.New("medium unavailable")

	ms := &mockStore{}
	ms.On("AddTask", mock.Anything, mock.Anything).Return(storeErr)
	ms.On("ListTasks", mock.Anything).Return(nil, storeErr)
	ms.On("DeleteTask", mock.Anything, int64(1)).Return(storeErr)

	_, err := NewAddTask(ms, discardLogger()).Execute(context.Background(), "x")
	assert.ErrorIs(t, err, storeErr)

	_, err = NewListTasks(ms, discardLogger()).Execute(context.Background())
	assert.ErrorIs(t, err, storeErr)

	err = NewDeleteTask(ms, discardLogger()).Execute(context.Background(), 1)
	assert.ErrorIs(t, err, storeErr)
}
