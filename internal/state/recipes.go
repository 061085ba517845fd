package state

import "github.com/cescofry/recp/internal/recipes"

// RecipeStore is the recipe list as seen by the UI. *recipes.Store
// implements it.
type RecipeStore interface {
	Recipes() []recipes.Recipe
	Len() int
	Source() string
	Add(recipes.Recipe) error
	Remove(command string) (int, error)
}

var _ RecipeStore = (*recipes.Store)(nil)
