// Package tui provides the interactive terminal front-end: the task
// list, an input field for new tasks and delete with confirmation. It is
// a caller of the use cases and renders their results; blank input is
// rejected here before any use case runs.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"task-manager/internal/domain"
	"task-manager/internal/usecase"
	"task-manager/internal/validation"
)

// taskItem adapts a domain.Task to the bubbles list item interface.
type taskItem struct {
	task *domain.Task
}

func (i taskItem) Title() string       { return i.task.Description }
func (i taskItem) Description() string { return fmt.Sprintf("ID %d", i.task.ID) }
func (i taskItem) FilterValue() string { return i.task.Description }

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Use cases
	addTask    *usecase.AddTask
	listTasks  *usecase.ListTasks
	deleteTask *usecase.DeleteTask

	// Components
	keys      KeyMap
	styles    Styles
	taskList  list.Model
	descInput textinput.Model
	validator *validation.TaskValidator

	// State
	mode          Mode
	confirmTaskID int64
	confirmLabel  string
	statusMsg     string
	err           error
	width         int
	height        int
}

// New creates a new TUI Model over the given use cases.
func New(add *usecase.AddTask, listUC *usecase.ListTasks, del *usecase.DeleteTask) *Model {
	di := textinput.New()
	di.Placeholder = "Task description"
	di.CharLimit = validation.DescriptionMaxLength

	delegate := list.NewDefaultDelegate()
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	return &Model{
		addTask:    add,
		listTasks:  listUC,
		deleteTask: del,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		taskList:   taskList,
		descInput:  di,
		validator:  validation.NewTaskValidator(),
		mode:       ModeNormal,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasksCmd()
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return nil
	}
	return item.task
}

// loadTasksCmd returns a command that loads tasks from the store.
func (m *Model) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.listTasks.Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: tasks}
	}
}

// addTaskCmd returns a command that persists a new task.
func (m *Model) addTaskCmd(description string) tea.Cmd {
	return func() tea.Msg {
		task, err := m.addTask.Execute(context.Background(), description)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdded{Task: task}
	}
}

// deleteTaskCmd returns a command that deletes a task by ID.
func (m *Model) deleteTaskCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := m.deleteTask.Execute(context.Background(), id); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{ID: id}
	}
}

// setTasks replaces the list contents.
func (m *Model) setTasks(tasks []*domain.Task) {
	items := make([]list.Item, len(tasks))
	for i, task := range tasks {
		items[i] = taskItem{task: task}
	}
	m.taskList.SetItems(items)
}
