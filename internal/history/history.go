// Package history produces the shell history list shown in the lower pane.
//
// Two origins are merged: a bounded buffer of the current shell session
// (fc) and the shell's history file. The result is most-recent-first with
// duplicates removed. Failures never abort the caller: Lines always returns
// whatever it managed to read, together with the error that degraded it.
package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cescofry/recp/internal/logging/events"
)

// DefaultRecentLimit bounds the session buffer requested from the shell.
const DefaultRecentLimit = 250

// ErrUnknownShell reports a shell whose history file recp cannot locate.
var ErrUnknownShell = errors.New("unrecognised shell")

// Source yields history lines, most recent first.
type Source interface {
	Lines(ctx context.Context) ([]string, error)
}

// RecentFunc returns up to limit commands from the running shell session in
// chronological order.
type RecentFunc func(ctx context.Context, shell string, limit int) ([]string, error)

// Kind identifies a supported shell family.
type Kind int

const (
	KindUnknown Kind = iota
	KindZsh
	KindBash
)

func (k Kind) String() string {
	switch k {
	case KindZsh:
		return "zsh"
	case KindBash:
		return "bash"
	default:
		return "unknown"
	}
}

// KindOf classifies a $SHELL value by its base name, so /usr/bin/zsh and
// /opt/homebrew/bin/zsh resolve the same way as /bin/zsh.
func KindOf(shell string) Kind {
	base := strings.TrimPrefix(filepath.Base(strings.TrimSpace(shell)), "-")
	switch base {
	case "zsh":
		return KindZsh
	case "bash":
		return KindBash
	default:
		return KindUnknown
	}
}

// Shell reads history for the user's configured shell.
type Shell struct {
	Path        string // value of $SHELL
	Home        string
	HistFile    string // value of $HISTFILE, overrides the derived path
	RecentLimit int
	Recent      RecentFunc
}

// NewShell builds a Shell source with the session buffer enabled.
func NewShell(shell, home, histFile string) Shell {
	return Shell{
		Path:        shell,
		Home:        home,
		HistFile:    histFile,
		RecentLimit: DefaultRecentLimit,
		Recent:      ShellRecent,
	}
}

// File resolves the history file path.
func (s Shell) File() (string, error) {
	if strings.TrimSpace(s.HistFile) != "" {
		return s.HistFile, nil
	}
	var name string
	switch KindOf(s.Path) {
	case KindZsh:
		name = ".zsh_history"
	case KindBash:
		name = ".bash_history"
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownShell, s.Path)
	}
	home := s.Home
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		home = dir
	}
	return filepath.Join(home, name), nil
}

// Lines implements Source.
func (s Shell) Lines(ctx context.Context) ([]string, error) {
	recent := s.recent(ctx)
	path, err := s.File()
	if err != nil {
		events.History.Degraded(err)
		return Merge(recent, nil), err
	}
	file, err := ReadFile(path, KindOf(s.Path))
	lines := Merge(recent, file)
	if err != nil {
		err = fmt.Errorf("read history %s: %w", path, err)
		events.History.Degraded(err)
		return lines, err
	}
	events.History.Loaded(KindOf(s.Path).String(), path, len(recent), len(lines))
	return lines, nil
}

// recent returns the session buffer most recent first. Errors are expected
// (a non-interactive shell usually has no session history) and only traced.
func (s Shell) recent(ctx context.Context) []string {
	if s.Recent == nil || s.RecentLimit <= 0 {
		return nil
	}
	lines, err := s.Recent(ctx, s.Path, s.RecentLimit)
	if err != nil {
		events.History.RecentUnavailable(s.Path, err)
		return nil
	}
	if len(lines) > s.RecentLimit {
		lines = lines[len(lines)-s.RecentLimit:]
	}
	return Reverse(lines)
}

// Static serves a fixed list, mainly for tests and demos.
type Static []string

// Lines implements Source.
func (s Static) Lines(context.Context) ([]string, error) {
	return Dedupe(s), nil
}
