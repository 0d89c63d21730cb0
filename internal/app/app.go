package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/tiwariParth/go-todo-cli/internal/log"
	"github.com/tiwariParth/go-todo-cli/internal/models"
	"github.com/tiwariParth/go-todo-cli/internal/storage"
	"github.com/tiwariParth/go-todo-cli/internal/task"
)

// ErrTaskNotFound is returned by EditTask when no task has the requested id.
var ErrTaskNotFound = errors.New("task not found")

// Config is the configuration for the todo app.
type Config struct {
	Storage storage.Storage
	Logger  log.Logger
}

func (c *Config) defaults() error {
	if c.Storage == nil {
		return fmt.Errorf("storage is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.TodoApp"})

	return nil
}

// TodoApp runs every operation as load, mutate, save against the storage.
// Nothing is kept between calls.
type TodoApp struct {
	store  storage.Storage
	logger log.Logger
}

// NewTodoApp creates a new todo app.
func NewTodoApp(cfg Config) (*TodoApp, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &TodoApp{
		store:  cfg.Storage,
		logger: cfg.Logger,
	}, nil
}

// Location is where the tasks are persisted.
func (a *TodoApp) Location() string {
	return a.store.Location()
}

// AddTask appends a HOLD task with description and saves.
func (a *TodoApp) AddTask(ctx context.Context, description string) (models.Task, error) {
	ts, err := a.load(ctx)
	if err != nil {
		return models.Task{}, err
	}

	t, err := ts.AddTask(description)
	if err != nil {
		return models.Task{}, fmt.Errorf("could not add task: %w", err)
	}
	a.logger.Debugf("adding task %d", t.ID)

	if err := a.save(ctx, ts); err != nil {
		return models.Task{}, err
	}

	return t, nil
}

// ListTasks returns every task in insertion order.
func (a *TodoApp) ListTasks(ctx context.Context) ([]models.Task, error) {
	ts, err := a.load(ctx)
	if err != nil {
		return nil, err
	}

	return ts.Tasks(), nil
}

// DeleteTask removes every task with id and saves, also when nothing matched.
// It returns how many tasks were removed.
func (a *TodoApp) DeleteTask(ctx context.Context, id int) (int, error) {
	ts, err := a.load(ctx)
	if err != nil {
		return 0, err
	}

	removed := ts.DeleteTask(id)
	if removed == 0 {
		a.logger.Warningf("no task with id %d, saving unchanged tasks", id)
	}

	if err := a.save(ctx, ts); err != nil {
		return 0, err
	}

	return removed, nil
}

// EditTask applies edit to the first task with id and saves, even when every
// field was skipped or failed. When no task matches it returns ErrTaskNotFound
// and does not save.
func (a *TodoApp) EditTask(ctx context.Context, id int, edit task.Edit) (task.EditResult, error) {
	ts, err := a.load(ctx)
	if err != nil {
		return task.EditResult{}, err
	}

	res := ts.EditTask(id, edit)
	if !res.Found {
		return res, fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
	}
	if res.StatusErr != nil {
		a.logger.Debugf("status of task %d not updated: %s", id, res.StatusErr)
	}

	if err := a.save(ctx, ts); err != nil {
		return res, err
	}

	return res, nil
}

func (a *TodoApp) load(ctx context.Context) (*task.TaskStore, error) {
	tasks, err := a.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}
	a.logger.Debugf("loaded %d tasks from %s", len(tasks), a.store.Location())

	return task.NewTaskStore(tasks), nil
}

func (a *TodoApp) save(ctx context.Context, ts *task.TaskStore) error {
	if err := a.store.Save(ctx, ts.Tasks()); err != nil {
		return fmt.Errorf("could not save tasks: %w", err)
	}
	return nil
}
