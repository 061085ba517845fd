package events

import "github.com/cescofry/recp/internal/logging"

type RecipeTracer struct{}

type recipeReason string

const (
	RecipeReasonEscape recipeReason = "escape"
	RecipeReasonDenied recipeReason = "denied"
)

var Recipe = RecipeTracer{}

func (RecipeTracer) NamePrompt(command string) {
	logging.Trace("recipe.name.prompt", map[string]interface{}{"command": command})
}

func (RecipeTracer) DeletePrompt(command string) {
	logging.Trace("recipe.delete.prompt", map[string]interface{}{"command": command})
}

func (RecipeTracer) Cancel(prompt string, reason recipeReason) {
	logging.Trace("recipe.prompt.cancel", map[string]interface{}{"prompt": prompt, "reason": string(reason)})
}

func (RecipeTracer) Add(title, command string, total int) {
	logging.Trace("recipe.add", map[string]interface{}{"title": title, "command": command, "total": total})
}

func (RecipeTracer) Remove(command string, removed, total int) {
	logging.Trace("recipe.remove", map[string]interface{}{"command": command, "removed": removed, "total": total})
}

func (RecipeTracer) SaveFailed(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("recipe.save.error", map[string]interface{}{"path": path, "error": err.Error()})
}
