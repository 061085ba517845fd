package recipes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cescofry/recp/internal/testutil"
)

func TestLocatePrefersExplicit(t *testing.T) {
	root := t.TempDir()
	explicit := testutil.WriteFile(t, filepath.Join(root, "custom.json"), "")
	testutil.WriteConfig(t, root, "")
	got, ok := Locate(explicit, root, root)
	if !ok || got != explicit {
		t.Fatalf("expected %s, got %s (%v)", explicit, got, ok)
	}
}

func TestLocateWalksUp(t *testing.T) {
	root := t.TempDir()
	want := testutil.WriteConfig(t, root, "")
	work := filepath.Join(root, "a", "b")
	testutil.WriteFile(t, filepath.Join(work, "keep"), "")
	got, ok := Locate("", work, t.TempDir())
	if !ok || got != want {
		t.Fatalf("expected %s, got %s (%v)", want, got, ok)
	}
}

func TestLocateNearestWins(t *testing.T) {
	root := t.TempDir()
	testutil.WriteConfig(t, root, "")
	work := filepath.Join(root, "proj")
	want := testutil.WriteConfig(t, work, "")
	got, ok := Locate("", work, "")
	if !ok || got != want {
		t.Fatalf("expected %s, got %s (%v)", want, got, ok)
	}
}

func TestLocateFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	want := testutil.WriteConfig(t, home, "")
	got, ok := Locate(filepath.Join(home, "missing"), "", home)
	if !ok || got != want {
		t.Fatalf("expected %s, got %s (%v)", want, got, ok)
	}
}

func TestOpenDeclined(t *testing.T) {
	home := t.TempDir()
	_, err := Open(OpenOptions{
		Home:    home,
		Confirm: func(string) (bool, error) { return false, nil },
	})
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
}

func TestOpenCreatesAtExplicitPath(t *testing.T) {
	home := t.TempDir()
	explicit := filepath.Join(t.TempDir(), "nested", "recipes.json")
	var asked string
	store, err := Open(OpenOptions{
		Explicit: explicit,
		Home:     home,
		Confirm: func(path string) (bool, error) {
			asked = path
			return true, nil
		},
	})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if asked != explicit || store.Source() != explicit {
		t.Fatalf("expected setup at %s, asked %s, source %s", explicit, asked, store.Source())
	}
	if raw := testutil.ReadFile(t, explicit); !strings.Contains(raw, `"recipes": []`) {
		t.Fatalf("expected empty recipes document, got %s", raw)
	}
}

func TestOpenReinitializesMissingKey(t *testing.T) {
	home := t.TempDir()
	path := testutil.WriteConfig(t, home, `{}`)
	store, err := Open(OpenOptions{
		Home:    home,
		Confirm: func(string) (bool, error) { return true, nil },
	})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if store.Source() != path || store.Len() != 0 {
		t.Fatalf("expected empty store at %s, got %s with %d", path, store.Source(), store.Len())
	}
}

func TestOpenMalformedIsError(t *testing.T) {
	home := t.TempDir()
	path := testutil.WriteConfig(t, home, `not json`)
	_, err := Open(OpenOptions{
		Home: home,
		Confirm: func(string) (bool, error) {
			t.Fatalf("setup must not run for malformed config")
			return false, nil
		},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if raw := testutil.ReadFile(t, path); raw != "not json" {
		t.Fatalf("expected malformed file untouched, got %q", raw)
	}
}

func TestFallsThroughToSetup(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"missing recipes key", fmt.Errorf("x: %w", ErrNotInitialized), true},
		{"permission denied", fmt.Errorf("read config x: %w", fs.ErrPermission), true},
		{"vanished file", fmt.Errorf("read config x: %w", fs.ErrNotExist), true},
		{"is a directory", errors.New("read config x: is a directory"), true},
		{"malformed", fmt.Errorf("%w x: unexpected end of JSON input", ErrMalformed), false},
		{"no error", nil, false},
	}
	for _, tc := range cases {
		if got := fallsThroughToSetup(tc.err); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestOpenUnreadableRunsSetup(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("skipping: root can read any file")
	}
	dir := t.TempDir()
	unreadable := testutil.WriteConfig(t, dir, `{"recipes":[]}`)
	if err := os.Chmod(unreadable, 0o000); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	t.Cleanup(func() { os.Chmod(unreadable, 0o644) })

	var asked string
	_, err := Open(OpenOptions{
		Explicit: unreadable,
		Home:     t.TempDir(),
		Confirm: func(path string) (bool, error) {
			asked = path
			return false, nil
		},
	})
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected setup to run and be declined, got %v", err)
	}
	if asked != unreadable {
		t.Fatalf("expected setup prompt for %s, got %q", unreadable, asked)
	}
}

func TestConfirmCreate(t *testing.T) {
	cases := map[string]bool{
		"\n":    true,
		"y\n":   true,
		"Yes\n": true,
		"n\n":   false,
		"NO\n":  false,
		"":      true,
	}
	for input, want := range cases {
		var out strings.Builder
		ok, err := ConfirmCreate(strings.NewReader(input), &out)("/tmp/.recp")
		if err != nil {
			t.Fatalf("input %q: unexpected error %v", input, err)
		}
		if ok != want {
			t.Fatalf("input %q: expected %v, got %v", input, want, ok)
		}
		if !strings.Contains(out.String(), "/tmp/.recp") {
			t.Fatalf("expected prompt to mention path, got %q", out.String())
		}
	}
}
