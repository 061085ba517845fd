// Package recipes owns the .recp file: locating it, loading it, first-run
// creation, and saving after every mutation.
package recipes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the dotfile searched for in the working directory, its
// parents, and the home directory.
const FileName = ".recp"

var (
	// ErrNotInitialized reports a config file without a "recipes" key.
	ErrNotInitialized = errors.New("config file has no recipes")
	// ErrDeclined reports that the user refused first-run setup.
	ErrDeclined = errors.New("config setup declined")
	// ErrMalformed reports a config file that is not valid JSON.
	ErrMalformed = errors.New("malformed config")
)

// Recipe is a named, user-saved shell command.
type Recipe struct {
	Title   string `json:"title"`
	Command string `json:"recipe"`
}

type document struct {
	Recipes *[]Recipe `json:"recipes"`
}

// Store is the in-memory recipe list bound to its source file. The in-memory
// list is authoritative for the session; Save mirrors it to disk.
type Store struct {
	source  string
	recipes []Recipe
}

// New returns an empty store that saves to path.
func New(path string) *Store {
	return &Store{source: path, recipes: []Recipe{}}
}

// Source returns the config file path.
func (s *Store) Source() string {
	return s.source
}

// Recipes returns a copy of the recipes in display order.
func (s *Store) Recipes() []Recipe {
	return cloneRecipes(s.recipes)
}

// Len returns the number of recipes.
func (s *Store) Len() int {
	return len(s.recipes)
}

// Load reads path. An empty file yields an empty store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return New(path), nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformed, path, err)
	}
	if doc.Recipes == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotInitialized)
	}
	store := New(path)
	store.recipes = cloneRecipes(*doc.Recipes)
	return store, nil
}

// Save overwrites the source file with the current recipes.
func (s *Store) Save() error {
	recipes := s.recipes
	if recipes == nil {
		recipes = []Recipe{}
	}
	data, err := json.MarshalIndent(document{Recipes: &recipes}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recipes: %w", err)
	}
	data = append(data, '\n')
	if dir := filepath.Dir(s.source); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(s.source, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", s.source, err)
	}
	return nil
}

// Add appends r and saves. The recipe stays in memory even when the save
// fails.
func (s *Store) Add(r Recipe) error {
	s.recipes = append(s.recipes, r)
	return s.Save()
}

// Remove drops every recipe whose command equals command and saves. It
// returns how many were removed; nothing is written when none match.
func (s *Store) Remove(command string) (int, error) {
	kept := make([]Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if r.Command == command {
			continue
		}
		kept = append(kept, r)
	}
	removed := len(s.recipes) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	s.recipes = kept
	return removed, s.Save()
}

func cloneRecipes(recipes []Recipe) []Recipe {
	dup := make([]Recipe, len(recipes))
	copy(dup, recipes)
	return dup
}
