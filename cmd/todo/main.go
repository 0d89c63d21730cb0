package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tiwariParth/go-todo-cli/internal/app"
	"github.com/tiwariParth/go-todo-cli/internal/cli"
	"github.com/tiwariParth/go-todo-cli/internal/log"
	loglogrus "github.com/tiwariParth/go-todo-cli/internal/log/logrus"
	"github.com/tiwariParth/go-todo-cli/internal/printer"
	"github.com/tiwariParth/go-todo-cli/internal/storage/file"
)

const (
	envLogLevel  = "TODO_LOG_LEVEL"
	envLogFormat = "TODO_LOG_FORMAT"
	envNoColor   = "NO_COLOR"
)

// Run runs the main application and returns the process exit code.
func Run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	logger, err := newLogger(getenv, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return cli.ExitFailure
	}

	store, err := file.NewStore(file.StoreConfig{
		Path:   file.DefaultPath,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not create task store: %s\n", err)
		return cli.ExitFailure
	}

	todoApp, err := app.NewTodoApp(app.Config{
		Storage: store,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not create app: %s\n", err)
		return cli.ExitFailure
	}

	c, err := cli.NewCLI(cli.Config{
		App: todoApp,
		Printer: printer.New(printer.Config{
			Out:     stdout,
			Err:     stderr,
			NoColor: getenv(envNoColor) != "",
		}),
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not create cli: %s\n", err)
		return cli.ExitFailure
	}

	return c.Run(ctx, args)
}

// newLogger builds the logrus logger, it writes to stderr so it never mixes
// with the command output.
func newLogger(getenv func(string) string, out io.Writer) (log.Logger, error) {
	l := logrus.New()
	l.Out = out

	level := logrus.WarnLevel
	if v := getenv(envLogLevel); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envLogLevel, err)
		}
		level = lvl
	}
	l.SetLevel(level)

	switch v := getenv(envLogFormat); v {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{DisableColors: getenv(envNoColor) != ""})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid %s %q, must be text or json", envLogFormat, v)
	}

	logger := loglogrus.NewLogrus(logrus.NewEntry(l))
	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger, nil
}

func main() {
	os.Exit(Run(context.Background(), os.Args, os.Getenv, os.Stdout, os.Stderr))
}
