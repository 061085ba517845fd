// Package state holds the pure selection state machine behind the recp UI:
// which pane is active, what is highlighted, the search buffer, modal
// prompts, and the command chosen to run once the UI has exited.
package state

import (
	"strings"
	"unicode"
)

// Mode is the input mode.
type Mode int

const (
	// ModeAction maps single keys to commands.
	ModeAction Mode = iota
	// ModeSearch feeds printable keys into the search buffer.
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "action"
}

// Pane is one of the two browsable lists.
type Pane int

const (
	PaneRecipes Pane = iota
	PaneHistory
)

// Other returns the opposite pane.
func (p Pane) Other() Pane {
	if p == PaneRecipes {
		return PaneHistory
	}
	return PaneRecipes
}

func (p Pane) String() string {
	if p == PaneHistory {
		return "History"
	}
	return "Recipes"
}

// Action is what happens to a pending command after the UI exits.
type Action int

const (
	ActionExecute Action = iota
	ActionCopy
)

func (a Action) String() string {
	if a == ActionCopy {
		return "copy"
	}
	return "execute"
}

// Pending is the command chosen for execution or copy.
type Pending struct {
	Action  Action
	Command string
}

// Selection is the complete UI state. It is a value: Handle returns an
// updated copy.
type Selection struct {
	Mode      Mode
	Pane      Pane
	Highlight int
	Search    string
	HideOther bool
	ShowInfo  bool
	Prompt    Prompt
	Name      string
	Target    string
	Pending   *Pending
	Quit      bool
}

// New returns the initial selection: Action mode, Recipes pane, nothing
// highlighted.
func New() Selection {
	return Selection{Highlight: -1}
}

// Done reports whether the event loop should end.
func (s Selection) Done() bool {
	return s.Quit || s.Pending != nil
}

// HasSelection reports whether an item is highlighted.
func (s Selection) HasSelection() bool {
	return s.Highlight >= 0
}

// Visible holds the raw commands currently shown in each pane, after
// filtering and truncation.
type Visible struct {
	Recipes []string
	History []string
}

// Items returns the visible commands of pane.
func (v Visible) Items(p Pane) []string {
	if p == PaneHistory {
		return v.History
	}
	return v.Recipes
}

// KeyKind classifies a key event.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyUp
	KeyDown
	KeyTab
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyInterrupt
)

// Key is a decoded key event.
type Key struct {
	Kind KeyKind
	Rune rune
}

// RuneKey returns a printable key event.
func RuneKey(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// IntentKind names the side effect requested by a key event.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentQuit
	IntentExecute
	IntentCopy
	IntentSave
	IntentDelete
	IntentPrompt
	IntentCancel
)

func (k IntentKind) String() string {
	switch k {
	case IntentQuit:
		return "quit"
	case IntentExecute:
		return "execute"
	case IntentCopy:
		return "copy"
	case IntentSave:
		return "save"
	case IntentDelete:
		return "delete"
	case IntentPrompt:
		return "prompt"
	case IntentCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Intent is emitted by Handle. Save carries Title and Command; Delete,
// Execute, Copy, and Prompt carry Command.
type Intent struct {
	Kind    IntentKind
	Title   string
	Command string
}

// Handle applies one key event. v must describe the lists as last rendered,
// so the highlight refers to the rows the user sees.
func Handle(s Selection, k Key, v Visible) (Selection, Intent) {
	if s.Done() {
		return s, Intent{}
	}
	if k.Kind == KeyInterrupt {
		s = closePrompt(s)
		s.Quit = true
		return s, Intent{Kind: IntentQuit}
	}
	switch s.Prompt {
	case PromptRecipeName:
		return handleNamePrompt(s, k)
	case PromptDeleteConfirm:
		return handleDeletePrompt(s, k)
	}

	switch k.Kind {
	case KeyUp:
		return Move(s, -1, v), Intent{}
	case KeyDown:
		return Move(s, 1, v), Intent{}
	case KeyTab:
		// Normalize clamps this once the new pane has been laid out.
		s.Pane = s.Pane.Other()
		s.Highlight = 0
		return s, Intent{}
	case KeyEnter:
		command, ok := highlighted(s, v)
		if !ok {
			return s, Intent{}
		}
		s.Pending = &Pending{Action: ActionExecute, Command: command}
		return s, Intent{Kind: IntentExecute, Command: command}
	case KeyEsc:
		s.Mode = toggleMode(s.Mode)
		return s, Intent{}
	case KeyBackspace:
		s.Search = dropLastRune(s.Search)
		return s, Intent{}
	case KeyRune:
		if s.Mode == ModeSearch {
			s.Search += string(k.Rune)
			return s, Intent{}
		}
		return handleAction(s, k.Rune, v)
	}
	return s, Intent{}
}

func handleAction(s Selection, r rune, v Visible) (Selection, Intent) {
	switch unicode.ToUpper(r) {
	case '/':
		s.Mode = ModeSearch
		s.Search = ""
	case 'Q':
		s.Quit = true
		return s, Intent{Kind: IntentQuit}
	case '+':
		s.ShowInfo = !s.ShowInfo
	case 'H':
		s.HideOther = !s.HideOther
	case 'S':
		if s.Pane != PaneHistory {
			break
		}
		if command, ok := highlighted(s, v); ok {
			return openPrompt(s, PromptRecipeName, command), Intent{Kind: IntentPrompt, Command: command}
		}
	case 'D':
		if s.Pane != PaneRecipes {
			break
		}
		if command, ok := highlighted(s, v); ok {
			return openPrompt(s, PromptDeleteConfirm, command), Intent{Kind: IntentPrompt, Command: command}
		}
	case 'C':
		if command, ok := highlighted(s, v); ok {
			trimmed := strings.TrimSpace(command)
			s.Pending = &Pending{Action: ActionCopy, Command: trimmed}
			return s, Intent{Kind: IntentCopy, Command: trimmed}
		}
	}
	return s, Intent{}
}

func highlighted(s Selection, v Visible) (string, bool) {
	items := v.Items(s.Pane)
	if s.Highlight < 0 || s.Highlight >= len(items) {
		return "", false
	}
	return items[s.Highlight], true
}

func toggleMode(m Mode) Mode {
	if m == ModeSearch {
		return ModeAction
	}
	return ModeSearch
}
