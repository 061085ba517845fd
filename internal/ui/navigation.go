package ui

import (
	"github.com/cescofry/recp/internal/logging"
	"github.com/cescofry/recp/internal/logging/events"
	"github.com/cescofry/recp/internal/recipes"
	uistate "github.com/cescofry/recp/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	for _, key := range translateKeys(keyMsg) {
		m.applyKey(key)
		if m.sel.Done() {
			return tea.Quit
		}
	}
	return nil
}

// applyKey runs one key through the selection state machine against the
// lists as currently displayed, then applies the resulting intent.
func (m *Model) applyKey(key uistate.Key) {
	m.refreshVisible()
	before := m.sel
	next, intent := uistate.Handle(m.sel, key, m.visible)
	m.sel = next
	m.traceTransition(before, next)
	m.applyIntent(before, key, intent)
	m.refreshVisible()
	m.sel = uistate.Normalize(m.sel, m.visible)
}

func (m *Model) applyIntent(before uistate.Selection, key uistate.Key, intent uistate.Intent) {
	switch intent.Kind {
	case uistate.IntentSave, uistate.IntentDelete:
		res := m.dispatcher.Handle(intent)
		if res.Err != nil {
			m.errMsg = res.Err.Error()
			logging.Error(res.Err)
			return
		}
		m.errMsg = ""
		if res.Info != "" {
			m.debugMsg = res.Info
			m.setInfo(res.Info)
		}
	case uistate.IntentPrompt:
		switch m.sel.Prompt {
		case uistate.PromptRecipeName:
			m.nameInput = newNameInput()
			events.Recipe.NamePrompt(intent.Command)
		case uistate.PromptDeleteConfirm:
			events.Recipe.DeletePrompt(intent.Command)
		}
	case uistate.IntentCancel:
		reason := events.RecipeReasonDenied
		if key.Kind == uistate.KeyEsc {
			reason = events.RecipeReasonEscape
		}
		events.Recipe.Cancel(before.Prompt.String(), reason)
	case uistate.IntentExecute, uistate.IntentCopy:
		if m.sel.Pending != nil {
			events.Command.Queue(m.sel.Pending.Action.String(), m.sel.Pending.Command)
		}
	case uistate.IntentQuit:
		events.App.Exit("quit")
	}
}

func (m *Model) traceTransition(before, after uistate.Selection) {
	if before.Mode != after.Mode {
		events.UI.Mode(after.Mode.String())
	}
	if before.Pane != after.Pane {
		events.UI.PaneSwitch(before.Pane.String(), after.Pane.String())
	}
	if before.Pane != after.Pane || before.Highlight != after.Highlight {
		events.UI.Cursor(after.Pane.String(), after.Highlight)
	}
	if before.HideOther != after.HideOther {
		events.UI.Toggle("hide", after.HideOther)
	}
	if before.ShowInfo != after.ShowInfo {
		events.UI.Toggle("info", after.ShowInfo)
	}
	if before.Search != after.Search {
		m.searchCursorDirty = true
		m.errMsg = ""
		m.forceClearInfo()
		switch {
		case after.Search == "":
			events.Filter.Cleared()
		case len(after.Search) > len(before.Search):
			events.Filter.Append(after.Search)
		default:
			events.Filter.Backspace(after.Search)
		}
	}
}

// refreshVisible recomputes the filtered, height-bounded rows of both panes.
func (m *Model) refreshVisible() {
	var all []recipes.Recipe
	if m.recipes != nil {
		all = m.recipes.Recipes()
	}
	recipeCap := uistate.PaneCapacity(m.height, m.sel.HideOther, uistate.PaneRecipes, m.sel.Pane)
	historyCap := uistate.PaneCapacity(m.height, m.sel.HideOther, uistate.PaneHistory, m.sel.Pane)
	m.recipeRows = uistate.FilterAndTruncate(all, recipeSearchText, m.sel.Search, recipeCap)
	m.historyRows = uistate.FilterAndTruncate(m.history.Lines(), historySearchText, m.sel.Search, historyCap)

	commands := make([]string, len(m.recipeRows))
	for i, r := range m.recipeRows {
		commands[i] = r.Command
	}
	m.visible = uistate.Visible{Recipes: commands, History: m.historyRows}
}

func recipeSearchText(r recipes.Recipe) string {
	return r.Title + " " + r.Command
}

func historySearchText(line string) string {
	return line
}
