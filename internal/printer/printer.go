// Package printer writes the user facing output of the CLI.
package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tiwariParth/go-todo-cli/internal/models"
)

// Config is the printer configuration.
type Config struct {
	// Out receives regular output, Err receives warnings and errors.
	Out     io.Writer
	Err     io.Writer
	NoColor bool
}

// Printer prints messages and task lists, coloured unless disabled.
type Printer struct {
	out io.Writer
	err io.Writer

	bold    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	status  map[models.TaskStatus]*color.Color
}

// New returns a new Printer.
func New(cfg Config) *Printer {
	p := &Printer{
		out:     cfg.Out,
		err:     cfg.Err,
		bold:    color.New(color.Bold),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		status: map[models.TaskStatus]*color.Color{
			models.StatusHold:     color.New(color.FgYellow),
			models.StatusProgress: color.New(color.FgCyan),
			models.StatusDone:     color.New(color.FgGreen),
		},
	}

	if p.out == nil {
		p.out = io.Discard
	}
	if p.err == nil {
		p.err = io.Discard
	}

	if cfg.NoColor {
		for _, c := range p.colors() {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) colors() []*color.Color {
	cs := []*color.Color{p.bold, p.success, p.warn, p.fail}
	for _, c := range p.status {
		cs = append(cs, c)
	}
	return cs
}

// Bold formats s in bold.
func (p *Printer) Bold(s string) string { return p.bold.Sprint(s) }

// Info prints a plain line to the output.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a green line to the output.
func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.out, format, args...)
	fmt.Fprintln(p.out)
}

// Warn prints a warning line to the error output.
func (p *Printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.err, "Warning: "+format, args...)
	fmt.Fprintln(p.err)
}

// Error prints an error line to the error output.
func (p *Printer) Error(format string, args ...any) {
	p.fail.Fprintf(p.err, "Error: "+format, args...)
	fmt.Fprintln(p.err)
}

// Status returns the coloured status name.
func (p *Printer) Status(s models.TaskStatus) string {
	c, ok := p.status[s]
	if !ok {
		return s.String()
	}
	return c.Sprint(s.String())
}

// PrintTasks prints one line per task in the given order.
func (p *Printer) PrintTasks(tasks []models.Task) {
	if len(tasks) == 0 {
		p.Info("No tasks found.")
		return
	}

	for _, t := range tasks {
		fmt.Fprintf(p.out, "ID: %d, Desc: %s, Status: %s\n", t.ID, p.Bold("\""+t.Description+"\""), p.Status(t.Status))
	}
}
