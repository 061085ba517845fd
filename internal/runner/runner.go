// Package runner carries out the pending command once the UI has released
// the terminal.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cescofry/recp/internal/logging/events"
	uistate "github.com/cescofry/recp/internal/ui/state"
)

// DefaultShell runs commands when $SHELL is unset.
const DefaultShell = "/bin/sh"

// Runner executes or copies a pending command.
type Runner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Copy writes text to the system clipboard.
	Copy func(string) error
}

// New returns a runner bound to the process's standard streams.
func New(shell string) *Runner {
	if strings.TrimSpace(shell) == "" {
		shell = DefaultShell
	}
	return &Runner{
		Shell:  shell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Copy:   clipboard.WriteAll,
	}
}

// Run carries out p and returns the exit code the process should use. A nil
// pending command is a no-op.
func (r *Runner) Run(ctx context.Context, p *uistate.Pending) (int, error) {
	if p == nil {
		return 0, nil
	}
	events.Command.Run(p.Action.String(), p.Command)
	var (
		code int
		err  error
	)
	switch p.Action {
	case uistate.ActionCopy:
		code, err = r.copy(p.Command)
	default:
		code, err = r.execute(ctx, p.Command)
	}
	events.Command.Result(p.Action.String(), code, err)
	return code, err
}

func (r *Runner) execute(ctx context.Context, command string) (int, error) {
	fmt.Fprintln(r.Stdout, command)
	cmd := exec.CommandContext(ctx, r.Shell, "-c", command)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, fmt.Errorf("run %q with %s: %w", command, r.Shell, err)
}

func (r *Runner) copy(text string) (int, error) {
	text = strings.TrimSpace(text)
	copyFn := r.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	if err := copyFn(text); err != nil {
		return 1, fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintf(r.Stderr, "Copied %s to clipboard.\n", text)
	return 0, nil
}
