package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cescofry/recp/internal/history"
	"github.com/cescofry/recp/internal/logging/events"
	"github.com/cescofry/recp/internal/recipes"
	"github.com/cescofry/recp/internal/runner"
	"github.com/cescofry/recp/internal/ui"
	uistate "github.com/cescofry/recp/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// escDelay shortens the escape-key delay for curses-based children.
const escDelay = "25"

// ErrNoTerminal is returned when stdin is not an interactive terminal.
var ErrNoTerminal = errors.New("recp needs an interactive terminal")

// Config describes user-provided application options.
type Config struct {
	ConfigPath string
	Debug      bool
	Version    string
	Shell      string
	Home       string
	HistFile   string
}

// ConfigError marks failures to read the recipe file, as opposed to runtime
// failures.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// Run opens the recipe file, runs the Bubble Tea program and then carries
// out the pending command. The returned code is the executed command's exit
// status, or 0 when nothing was run.
func Run(ctx context.Context, cfg Config) (int, error) {
	ensureEscDelay()
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return 0, ErrNoTerminal
	}

	store, err := openStore(cfg, os.Stdin, os.Stderr)
	if err != nil {
		return 0, err
	}

	model := ui.NewModel(ui.Options{
		Recipes: store,
		History: history.NewShell(cfg.Shell, cfg.Home, cfg.HistFile),
		Debug:   cfg.Debug,
		Blink:   true,
		Version: cfg.Version,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return 0, fmt.Errorf("run ui: %w", err)
	}

	return execute(ctx, runner.New(cfg.Shell), model.Outcome())
}

func openStore(cfg Config, in io.Reader, out io.Writer) (*recipes.Store, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	store, err := recipes.Open(recipes.OpenOptions{
		Explicit: cfg.ConfigPath,
		WorkDir:  workDir,
		Home:     cfg.Home,
		Confirm:  recipes.ConfirmCreate(in, out),
	})
	if err != nil {
		if errors.Is(err, recipes.ErrDeclined) {
			return nil, err
		}
		return nil, &ConfigError{Err: err}
	}
	events.App.ConfigResolved(store.Source(), store.Len())
	return store, nil
}

func execute(ctx context.Context, r *runner.Runner, pending *uistate.Pending) (int, error) {
	if pending == nil {
		events.App.Exit("no-command")
		return 0, nil
	}
	return r.Run(ctx, pending)
}

func ensureEscDelay() {
	if _, ok := os.LookupEnv("ESCDELAY"); !ok {
		os.Setenv("ESCDELAY", escDelay)
	}
}
