// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/runoshun/tasktable/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskResource is an in-memory test double for domain.TaskResource.
// Records are kept in server order; ids are assigned from NextIDN.
// Fields are ordered to minimize memory padding.
type MockTaskResource struct {
	ListErr     error
	CreateErr   error
	UpdateErr   error
	DeleteErr   error
	Tasks       []*domain.Task
	NextIDN     int
	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
	mu          sync.Mutex
}

// Ensure MockTaskResource implements domain.TaskResource.
var _ domain.TaskResource = (*MockTaskResource)(nil)

// NewMockTaskResource creates a MockTaskResource seeded with copies of tasks.
func NewMockTaskResource(tasks ...*domain.Task) *MockTaskResource {
	return &MockTaskResource{
		Tasks:   domain.CloneTasks(tasks),
		NextIDN: 1,
	}
}

// List returns copies of all tasks.
func (m *MockTaskResource) List(ctx context.Context) ([]*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return domain.CloneTasks(m.Tasks), nil
}

// Create appends the task with the next id.
func (m *MockTaskResource) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	stored := task.Clone()
	stored.ID = domain.TaskID(strconv.Itoa(m.NextIDN))
	m.NextIDN++
	m.Tasks = append(m.Tasks, stored)
	return stored.Clone(), nil
}

// Update replaces the task with the given id.
func (m *MockTaskResource) Update(ctx context.Context, id domain.TaskID, task *domain.Task) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	idx := domain.IndexOf(m.Tasks, id)
	if idx < 0 {
		return nil, fmt.Errorf("update %s: %w", id, domain.ErrTaskNotFound)
	}
	stored := task.Clone()
	stored.ID = id
	m.Tasks[idx] = stored
	return stored.Clone(), nil
}

// Delete removes the task with the given id.
func (m *MockTaskResource) Delete(ctx context.Context, id domain.TaskID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	idx := domain.IndexOf(m.Tasks, id)
	if idx < 0 {
		return fmt.Errorf("delete %s: %w", id, domain.ErrTaskNotFound)
	}
	m.Tasks = append(m.Tasks[:idx], m.Tasks[idx+1:]...)
	return nil
}

// Stored returns a copy of the task with the given id, or nil.
func (m *MockTaskResource) Stored(id domain.TaskID) *domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx := domain.IndexOf(m.Tasks, id); idx >= 0 {
		return m.Tasks[idx].Clone()
	}
	return nil
}

// LogEntry is a single entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	TaskID   domain.TaskID
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level string, taskID domain.TaskID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(taskID domain.TaskID, category, msg string) {
	m.record("INFO", taskID, category, msg)
}

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID domain.TaskID, category, msg string) {
	m.record("DEBUG", taskID, category, msg)
}

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID domain.TaskID, category, msg string) {
	m.record("WARN", taskID, category, msg)
}

// Error records an error entry.
func (m *MockLogger) Error(taskID domain.TaskID, category, msg string) {
	m.record("ERROR", taskID, category, msg)
}

// Levels returns the recorded entries at the given level.
func (m *MockLogger) Levels(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a MockConfigLoader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}
