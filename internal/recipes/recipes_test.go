package recipes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cescofry/recp/internal/testutil"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	store := New(path)
	if err := store.Add(Recipe{Title: "T", Command: "ls -la"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	got := loaded.Recipes()
	if len(got) != 1 || got[0].Title != "T" || got[0].Command != "ls -la" {
		t.Fatalf("unexpected recipes %#v", got)
	}
	raw := testutil.ReadFile(t, path)
	if !strings.Contains(raw, `"recipe": "ls -la"`) || !strings.Contains(raw, `"title": "T"`) {
		t.Fatalf("expected recipe/title keys on disk, got %s", raw)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := testutil.WriteConfig(t, t.TempDir(), "")
	store, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected no recipes, got %d", store.Len())
	}
}

func TestLoadMissingRecipesKey(t *testing.T) {
	path := testutil.WriteConfig(t, t.TempDir(), `{"other": 1}`)
	if _, err := Load(path); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := testutil.WriteConfig(t, t.TempDir(), `{"recipes": [`)
	_, err := Load(path)
	if !errors.Is(err, ErrMalformed) || errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestRemoveDeletesEveryMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	store := New(path)
	store.recipes = []Recipe{
		{Title: "a", Command: "ls"},
		{Title: "b", Command: "pwd"},
		{Title: "c", Command: "ls"},
	}
	removed, err := store.Remove("ls")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	got := loaded.Recipes()
	if len(got) != 1 || got[0].Command != "pwd" {
		t.Fatalf("unexpected recipes after remove %#v", got)
	}
}

func TestRemoveMissingIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	store := New(path)
	store.recipes = []Recipe{{Title: "a", Command: "ls"}}
	removed, err := store.Remove("pwd")
	if err != nil || removed != 0 {
		t.Fatalf("expected no-op, got removed=%d err=%v", removed, err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no file written, stat err %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected store untouched, got %d", store.Len())
	}
}

func TestAddKeepsRecipeWhenSaveFails(t *testing.T) {
	dir := t.TempDir()
	blocker := testutil.WriteFile(t, filepath.Join(dir, "blocker"), "x")
	store := New(filepath.Join(blocker, FileName))
	if err := store.Add(Recipe{Title: "t", Command: "ls"}); err == nil {
		t.Fatalf("expected save error")
	}
	if store.Len() != 1 {
		t.Fatalf("expected recipe kept in memory, got %d", store.Len())
	}
}

func TestRecipesReturnsCopy(t *testing.T) {
	store := New("unused")
	store.recipes = []Recipe{{Title: "a", Command: "ls"}}
	got := store.Recipes()
	got[0].Title = "changed"
	if store.recipes[0].Title != "a" {
		t.Fatalf("expected store to be isolated from caller mutation")
	}
}
