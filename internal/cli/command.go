package cli

import (
	"errors"
	"strings"
)

// Argument errors, all detected before the store is touched.
var (
	ErrMissingAction      = errors.New("no action in command")
	ErrMissingDescription = errors.New("no description provided for 'add' action")
	ErrMissingArgument    = errors.New("missing required argument (e.g., ID or description)")
	ErrInvalidID          = errors.New("invalid task ID")
	ErrMissingEditFields  = errors.New("for 'edit', you must provide a new description and/or a new status")
)

// Command is a single parsed invocation.
type Command struct {
	Action   string
	FirstArg string
	// SecondArg and ThirdArg are nil when not given, an empty string was given explicitly.
	SecondArg *string
	ThirdArg  *string
}

// ParseCommand reads a Command from the process arguments, args[0] is the
// program name. Arguments are positional and taken verbatim.
func ParseCommand(args []string) (Command, error) {
	next := func() (string, bool) {
		if len(args) == 0 {
			return "", false
		}
		v := args[0]
		args = args[1:]
		return v, true
	}

	next() // Program name.

	action, ok := next()
	if !ok {
		return Command{}, ErrMissingAction
	}

	first, ok := next()
	if !ok {
		switch {
		case strings.EqualFold(action, actionList):
			first = ""
		case strings.EqualFold(action, actionAdd):
			return Command{}, ErrMissingDescription
		default:
			return Command{}, ErrMissingArgument
		}
	}

	cmd := Command{Action: action, FirstArg: first}
	if v, ok := next(); ok {
		cmd.SecondArg = &v
	}
	if v, ok := next(); ok {
		cmd.ThirdArg = &v
	}

	return cmd, nil
}
