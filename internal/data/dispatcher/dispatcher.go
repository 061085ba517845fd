package dispatcher

import (
	"fmt"

	"github.com/cescofry/recp/internal/logging/events"
	"github.com/cescofry/recp/internal/recipes"
	"github.com/cescofry/recp/internal/state"
	uistate "github.com/cescofry/recp/internal/ui/state"
)

type Result struct {
	RecipesUpdated bool
	Info           string
	Err            error
}

type Dispatcher struct {
	recipes state.RecipeStore
}

func New(r state.RecipeStore) *Dispatcher {
	return &Dispatcher{recipes: r}
}

// Handle applies save and delete intents to the recipe store. The store
// saves before returning, so the file on disk matches the UI once Handle is
// done. Other intents are ignored.
func (d *Dispatcher) Handle(intent uistate.Intent) Result {
	var res Result
	if d == nil || d.recipes == nil {
		return res
	}
	switch intent.Kind {
	case uistate.IntentSave:
		err := d.recipes.Add(recipes.Recipe{Title: intent.Title, Command: intent.Command})
		res.RecipesUpdated = true
		events.Recipe.Add(intent.Title, intent.Command, d.recipes.Len())
		if err != nil {
			res.Err = fmt.Errorf("save recipe %q: %w", intent.Title, err)
			events.Recipe.SaveFailed(d.recipes.Source(), err)
			return res
		}
		res.Info = fmt.Sprintf("RECIPE ADDED: %d", d.recipes.Len())
	case uistate.IntentDelete:
		removed, err := d.recipes.Remove(intent.Command)
		res.RecipesUpdated = removed > 0
		events.Recipe.Remove(intent.Command, removed, d.recipes.Len())
		if err != nil {
			res.Err = fmt.Errorf("delete recipe: %w", err)
			events.Recipe.SaveFailed(d.recipes.Source(), err)
			return res
		}
		res.Info = fmt.Sprintf("RECIPE REMOVED: %d", d.recipes.Len())
	}
	return res
}
