// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/config"
	"github.com/taskdeck/taskdeck/internal/infra/memstore"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Tasks  domain.TaskRepository
	Clock  domain.Clock
	Config *domain.Config
	Logger *slog.Logger
}

// New creates a new Container. configPath may be empty, in which case
// the default config location is used; a missing file yields defaults.
func New(configPath string) (*Container, error) {
	cfg, err := config.NewLoader(configPath).Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))

	return &Container{
		Tasks:  memstore.New(),
		Clock:  domain.RealClock{},
		Config: cfg,
		Logger: logger,
	}, nil
}

// parseLevel parses a log level string into slog.Level.
func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// AddTaskUseCase creates an AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// RemoveTaskUseCase creates a RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Tasks)
}

// CompleteTaskUseCase creates a CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks)
}

// ListTasksUseCase creates a ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// SearchTasksUseCase creates a SearchTasks use case.
func (c *Container) SearchTasksUseCase() *usecase.SearchTasks {
	return usecase.NewSearchTasks(c.Tasks)
}

// TaskStatsUseCase creates a TaskStats use case.
func (c *Container) TaskStatsUseCase() *usecase.TaskStats {
	return usecase.NewTaskStats(c.Tasks)
}

// ImportTasksUseCase creates an ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Clock, c.Logger)
}
