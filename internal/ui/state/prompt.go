package state

import (
	"strings"
	"unicode/utf8"
)

// MinNameLength is the shortest accepted recipe title, counted in runes after
// trimming.
const MinNameLength = 2

// Prompt identifies the modal sub-state the selection is in.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptRecipeName
	PromptDeleteConfirm
)

func (p Prompt) String() string {
	switch p {
	case PromptRecipeName:
		return "recipe-name"
	case PromptDeleteConfirm:
		return "delete-confirm"
	default:
		return "none"
	}
}

func openPrompt(s Selection, prompt Prompt, target string) Selection {
	s.Prompt = prompt
	s.Target = target
	s.Name = ""
	return s
}

func closePrompt(s Selection) Selection {
	s.Prompt = PromptNone
	s.Target = ""
	s.Name = ""
	return s
}

func handleNamePrompt(s Selection, k Key) (Selection, Intent) {
	switch k.Kind {
	case KeyRune:
		s.Name += string(k.Rune)
	case KeyBackspace:
		s.Name = dropLastRune(s.Name)
	case KeyEsc:
		return closePrompt(s), Intent{Kind: IntentCancel}
	case KeyEnter:
		title := strings.TrimSpace(s.Name)
		if utf8.RuneCountInString(title) < MinNameLength {
			return s, Intent{}
		}
		command := s.Target
		s = closePrompt(s)
		s.Highlight = -1
		return s, Intent{Kind: IntentSave, Title: title, Command: command}
	}
	return s, Intent{}
}

func handleDeletePrompt(s Selection, k Key) (Selection, Intent) {
	switch {
	case k.Kind == KeyRune && (k.Rune == 'y' || k.Rune == 'Y'):
		command := s.Target
		s = closePrompt(s)
		s.Highlight = -1
		return s, Intent{Kind: IntentDelete, Command: command}
	case k.Kind == KeyRune && (k.Rune == 'n' || k.Rune == 'N'), k.Kind == KeyEsc:
		return closePrompt(s), Intent{Kind: IntentCancel}
	}
	return s, Intent{}
}
