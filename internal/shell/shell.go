// Package shell runs external commands in an explicit working directory.
//
// Commands never change the working directory of the calling process;
// each Command carries its own Dir.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/tacogips/create-repro/internal/debug"
)

// ErrNotFound is returned when the command binary is not on PATH.
var ErrNotFound = errors.New("command not found")

// Command describes one subprocess invocation.
type Command struct {
	// Name is the program to run, looked up on PATH.
	Name string
	// Args are the program arguments.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Stdout and Stderr receive the program output as it is produced.
	// Nil discards the stream.
	Stdout io.Writer
	Stderr io.Writer
}

// String returns the command line for display.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		if arg == "" || strings.ContainsAny(arg, " \t\"'") {
			arg = fmt.Sprintf("%q", arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// Runner executes commands.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports a command that ran and exited with a non-zero status.
type ExitError struct {
	Command  string
	ExitCode int
	Cause    error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying cause error.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner backed by real subprocesses.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts cmd and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	bin, err := exec.LookPath(cmd.Name)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, ErrNotFound)
	}

	debug.Debugf("[shell] Running %s (dir=%s)", cmd.String(), cmd.Dir)

	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: cmd.String(), ExitCode: exitErr.ExitCode(), Cause: err}
		}
		return fmt.Errorf("failed to run %s: %w", cmd.Name, err)
	}
	return nil
}
