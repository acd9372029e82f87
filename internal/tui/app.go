package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/rowstore"
)

// Model is the main bubbletea model for the TUI.
// The row store owns the records and view parameters; the model only holds
// presentation state.
type Model struct {
	// Dependencies (pointers first for alignment)
	store *rowstore.Store
	clock domain.Clock
	err   error
	form  *taskForm

	// Components (structs with pointers)
	keys        KeyMap
	styles      Styles
	help        help.Model
	filterInput textinput.Model

	notice        string
	confirmTaskID domain.TaskID
	deletingID    domain.TaskID // Delete request in flight

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	cursor        int // Row within the current page
	formSeq       int // Last form opened
	errSeq        int // Last error shown
	width         int
	height        int
	loading       bool
}

// errorDisplayTime is how long an error stays in the notification line.
const errorDisplayTime = 5 * time.Second

// New creates a new TUI Model over the given row store.
func New(store *rowstore.Store, clock domain.Clock) *Model {
	fi := textinput.New()
	fi.Placeholder = "Filter by title..."
	fi.CharLimit = 100

	return &Model{
		store:       store,
		clock:       clock,
		mode:        ModeNormal,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		filterInput: fi,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	m.loading = true
	return m.loadTasks()
}

// loadTasks returns a command that reloads the row store from the resource.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		if err := m.store.Load(context.Background()); err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Count: m.store.Len()}
	}
}

// createTask returns a command that creates a task.
func (m *Model) createTask(seq int, task *domain.Task) tea.Cmd {
	return func() tea.Msg {
		created, err := m.store.Create(context.Background(), task)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{Task: created, Seq: seq}
	}
}

// updateTask returns a command that saves an edited task.
func (m *Model) updateTask(seq int, id domain.TaskID, task *domain.Task) tea.Cmd {
	return func() tea.Msg {
		updated, err := m.store.Update(context.Background(), id, task)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskUpdated{ID: id, Task: updated, Seq: seq}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(id domain.TaskID) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.Remove(context.Background(), id); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: id}
	}
}

// showError puts err in the notification line and schedules its removal.
func (m *Model) showError(err error) tea.Cmd {
	m.err = err
	m.errSeq++
	seq := m.errSeq
	return tea.Tick(errorDisplayTime, func(time.Time) tea.Msg {
		return MsgClearError{Seq: seq}
	})
}

// SelectedTask returns the task under the cursor, or nil if the page is empty.
func (m *Model) SelectedTask() *domain.Task {
	page := m.store.View().Page
	if m.cursor < 0 || m.cursor >= len(page) {
		return nil
	}
	return page[m.cursor]
}

// clampCursor keeps the cursor on a row of the current page.
func (m *Model) clampCursor() {
	n := len(m.store.View().Page)
	m.cursor = max(0, min(m.cursor, n-1))
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Err returns the error shown in the notification line, if any.
func (m *Model) Err() error {
	return m.err
}
