package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tiwariParth/go-todo-cli/internal/app"
	"github.com/tiwariParth/go-todo-cli/internal/log"
	"github.com/tiwariParth/go-todo-cli/internal/models"
	"github.com/tiwariParth/go-todo-cli/internal/printer"
	"github.com/tiwariParth/go-todo-cli/internal/task"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

const (
	actionAdd    = "add"
	actionList   = "list"
	actionEdit   = "edit"
	actionDelete = "delete"
)

var actions = []string{actionAdd, actionList, actionEdit, actionDelete}

const editUsage = `Usage: todo edit <task_id> "<new_description>" [NEW_STATUS:HOLD|PROGRESS|DONE]`

// Config is the CLI configuration.
type Config struct {
	App     *app.TodoApp
	Printer *printer.Printer
	Logger  log.Logger
}

func (c *Config) defaults() error {
	if c.App == nil {
		return fmt.Errorf("app is required")
	}

	if c.Printer == nil {
		c.Printer = printer.New(printer.Config{NoColor: true})
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "cli.CLI"})

	return nil
}

// CLI represents the command-line interface.
type CLI struct {
	app     *app.TodoApp
	printer *printer.Printer
	logger  log.Logger
}

// NewCLI initializes a new CLI.
func NewCLI(cfg Config) (*CLI, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &CLI{
		app:     cfg.App,
		printer: cfg.Printer,
		logger:  cfg.Logger,
	}, nil
}

// Run executes one action from the process arguments and returns the exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	cmd, err := ParseCommand(args)
	if err != nil {
		c.printer.Error("problem parsing arguments: %s", err)
		return ExitFailure
	}

	action := strings.ToLower(cmd.Action)
	c.logger.Debugf("running %q action", action)

	switch action {
	case actionAdd:
		err = c.add(ctx, cmd)
	case actionList:
		err = c.list(ctx)
	case actionEdit:
		err = c.edit(ctx, cmd)
	case actionDelete:
		err = c.delete(ctx, cmd)
	default:
		c.printer.Error("unknown action '%s'. Available actions: %s", cmd.Action, strings.Join(actions, ", "))
		return ExitFailure
	}

	if err != nil {
		c.printer.Error("%s", err)
		return ExitFailure
	}

	return ExitOK
}

func (c *CLI) add(ctx context.Context, cmd Command) error {
	c.printer.Info("Adding new task: %s", c.printer.Bold("\""+cmd.FirstArg+"\""))

	t, err := c.app.AddTask(ctx, cmd.FirstArg)
	if err != nil {
		return err
	}

	c.saved()
	c.printer.Success("Task added successfully (ID: %d).", t.ID)
	return nil
}

func (c *CLI) list(ctx context.Context) error {
	c.printer.Info("Listing all tasks...")

	tasks, err := c.app.ListTasks(ctx)
	if err != nil {
		return err
	}

	c.printer.PrintTasks(tasks)
	return nil
}

func (c *CLI) delete(ctx context.Context, cmd Command) error {
	id, err := parseID(cmd.FirstArg)
	if err != nil {
		return err
	}

	c.printer.Info("Deleting task id: %d", id)

	if _, err := c.app.DeleteTask(ctx, id); err != nil {
		return err
	}

	c.saved()
	c.printer.Success("Task ID %d deleted successfully.", id)
	return nil
}

func (c *CLI) edit(ctx context.Context, cmd Command) error {
	id, err := parseID(cmd.FirstArg)
	if err != nil {
		return err
	}

	edit := task.Edit{Description: cmd.SecondArg, Status: cmd.ThirdArg}
	if edit.IsEmpty() {
		return fmt.Errorf("%w. %s", ErrMissingEditFields, editUsage)
	}

	c.printer.Info("Editing task id: %d", id)

	res, err := c.app.EditTask(ctx, id, edit)
	if errors.Is(err, app.ErrTaskNotFound) {
		c.printer.Info("Task with ID %d not found.", id)
		return nil
	}
	if !res.Found {
		return err
	}

	if res.DescriptionUpdated {
		c.printer.Info("Updated description for task ID %d", id)
	}
	if res.DescriptionSkipped {
		c.printer.Warn("New description is empty, not updating description for task ID %d.", id)
	}
	if res.StatusUpdated {
		c.printer.Info("Updated status for task ID %d", id)
	}
	if res.StatusErr != nil {
		c.printer.Error("could not update status for task ID %d: %s", id, res.StatusErr)
	}

	if err != nil {
		return err
	}

	c.saved()
	c.printer.Success("Task ID %d updated successfully.", id)
	return nil
}

func (c *CLI) saved() {
	c.printer.Success("Saved tasks to '%s'", c.app.Location())
}

func parseID(text string) (int, error) {
	id, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w '%s'. Must be a number between %d and %d", ErrInvalidID, text, models.MinTaskID, models.MaxTaskID)
	}
	return int(id), nil
}
