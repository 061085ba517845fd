package recipes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Locate finds the config file: the explicit path when it names an existing
// file, else the nearest .recp walking up from workDir, else ~/.recp.
func Locate(explicit, workDir, home string) (string, bool) {
	if strings.TrimSpace(explicit) != "" && isFile(explicit) {
		return explicit, true
	}
	if workDir != "" {
		dir := filepath.Clean(workDir)
		for {
			candidate := filepath.Join(dir, FileName)
			if isFile(candidate) {
				return candidate, true
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	if home != "" {
		candidate := filepath.Join(home, FileName)
		if isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// SetupPath is where first-run setup creates the config file.
func SetupPath(explicit, home string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return filepath.Join(home, FileName)
}

// OpenOptions drives Open.
type OpenOptions struct {
	Explicit string
	WorkDir  string
	Home     string
	// Confirm asks whether a new config file may be created at path.
	Confirm func(path string) (bool, error)
}

// Open locates and loads the config file, running first-run setup when no
// usable file exists. Malformed JSON is returned as an error rather than
// overwritten.
func Open(opts OpenOptions) (*Store, error) {
	if path, ok := Locate(opts.Explicit, opts.WorkDir, opts.Home); ok {
		store, err := Load(path)
		if err == nil {
			return store, nil
		}
		if !fallsThroughToSetup(err) {
			return nil, err
		}
	}
	return Setup(SetupPath(opts.Explicit, opts.Home), opts.Confirm)
}

// fallsThroughToSetup reports whether a load failure is treated like a
// missing file. Only malformed JSON is fatal.
func fallsThroughToSetup(err error) bool {
	return err != nil && !errors.Is(err, ErrMalformed)
}

// Setup creates an empty config file at path after confirmation.
func Setup(path string, confirm func(string) (bool, error)) (*Store, error) {
	if confirm == nil {
		return nil, fmt.Errorf("no config file found and setup is not interactive: %w", ErrDeclined)
	}
	ok, err := confirm(path)
	if err != nil {
		return nil, fmt.Errorf("confirm config setup: %w", err)
	}
	if !ok {
		return nil, ErrDeclined
	}
	store := New(path)
	if err := store.Save(); err != nil {
		return nil, err
	}
	return store, nil
}
