package domain

import (
	"context"
	"time"
)

// TaskResource is the remote CRUD resource holding task records.
type TaskResource interface {
	// List returns all task records in server order.
	List(ctx context.Context) ([]*Task, error)

	// Create stores a new task and returns it with its server-assigned id.
	Create(ctx context.Context, task *Task) (*Task, error)

	// Update replaces the task with the given id and returns the stored record.
	Update(ctx context.Context, id TaskID, task *Task) (*Task, error)

	// Delete removes the task with the given id.
	Delete(ctx context.Context, id TaskID) error
}

// Logger is the observability sink for row store and client events.
// An empty taskID marks an entry that is not tied to a single task.
type Logger interface {
	Info(taskID TaskID, category, msg string)
	Debug(taskID TaskID, category, msg string)
	Warn(taskID TaskID, category, msg string)
	Error(taskID TaskID, category, msg string)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + files + environment).
	Load() (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	GetGlobalConfigInfo() ConfigInfo
	GetExplicitConfigInfo() ConfigInfo
	// InitGlobalConfig writes the default config to the global path and returns it.
	InitGlobalConfig() (string, error)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
