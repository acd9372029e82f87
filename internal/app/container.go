// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/infra/config"
	"github.com/runoshun/tasktable/internal/infra/httpapi"
	"github.com/runoshun/tasktable/internal/infra/logging"
	"github.com/runoshun/tasktable/internal/rowstore"
	"github.com/runoshun/tasktable/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir    string // Directory the command runs in
	DotEnvPath string // Path to the .env file loaded at startup
	StateDir   string // Directory holding logs/ ("" disables the log file)
}

// newConfig creates a new Config for the given working directory.
func newConfig(dir string) Config {
	return Config{
		WorkDir:    dir,
		DotEnvPath: filepath.Join(dir, domain.DotEnvFileName),
		StateDir:   logging.DefaultStateDir(),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for the row store.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskResource
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	EventLog      domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	Logger    *slog.Logger
	closer    io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// The .env file in dir is loaded first, then the configuration.
func New(dir string) (*Container, error) {
	cfg := newConfig(dir)

	if err := config.LoadDotEnv(cfg.DotEnvPath); err != nil {
		return nil, err
	}

	configLoader := config.NewLoader()
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := logging.ParseLevel(appConfig.Log.Level)
	eventLog := logging.New(cfg.StateDir, level)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	client := httpapi.New(appConfig.API.BaseURL, appConfig.API.Timeout)
	logger.Debug("task resource configured", "base_url", client.BaseURL(), "timeout", appConfig.API.Timeout)

	return &Container{
		Tasks:         client,
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		EventLog:      eventLog,
		ConfigManager: config.NewManager(configLoader),
		AppConfig:     appConfig,
		Logger:        logger,
		closer:        eventLog,
		Config:        cfg,
	}, nil
}

// NewConfigOnly creates a Container holding only the config loader and manager.
// It is used when the full container cannot be built (e.g. an invalid base URL),
// so the configuration can still be inspected and fixed.
func NewConfigOnly(dir string) *Container {
	cfg := newConfig(dir)
	_ = config.LoadDotEnv(cfg.DotEnvPath)
	loader := config.NewLoader()
	return &Container{
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(loader),
		Logger:        slog.New(slog.NewTextHandler(os.Stderr, nil)),
		Config:        cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, tasks domain.TaskResource, clock domain.Clock, eventLog domain.Logger, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Container{
		Tasks:     tasks,
		Clock:     clock,
		EventLog:  eventLog,
		AppConfig: appConfig,
		Logger:    logger,
		Config:    cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// NewRowStore returns a Row Store over the task resource, using the configured page size.
func (c *Container) NewRowStore() *rowstore.Store {
	return rowstore.New(c.Tasks, c.EventLog, c.Clock, c.AppConfig.View.PageSize)
}

// UseCase factory methods

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.NewRowStore())
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.NewRowStore())
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.NewRowStore())
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.NewRowStore(), c.Clock)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.NewRowStore())
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.NewRowStore(), c.Clock, c.EventLog)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.ConfigManager)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
