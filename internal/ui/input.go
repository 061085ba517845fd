package ui

import (
	"unicode"

	uistate "github.com/cescofry/recp/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateSearchCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

// translateKeys maps a Bubble Tea key message onto selection keys. Pasted or
// buffered input can carry several runes in one message.
func translateKeys(msg tea.KeyMsg) []uistate.Key {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []uistate.Key{{Kind: uistate.KeyInterrupt}}
	case tea.KeyUp:
		return []uistate.Key{{Kind: uistate.KeyUp}}
	case tea.KeyDown:
		return []uistate.Key{{Kind: uistate.KeyDown}}
	case tea.KeyTab:
		return []uistate.Key{{Kind: uistate.KeyTab}}
	case tea.KeyEnter:
		return []uistate.Key{{Kind: uistate.KeyEnter}}
	case tea.KeyEsc:
		return []uistate.Key{{Kind: uistate.KeyEsc}}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []uistate.Key{{Kind: uistate.KeyBackspace}}
	case tea.KeySpace:
		return []uistate.Key{uistate.RuneKey(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		keys := make([]uistate.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			keys = append(keys, uistate.RuneKey(r))
		}
		return keys
	}
	return nil
}

func (m *Model) searchLabel() string {
	if m.sel.Mode == uistate.ModeSearch {
		return "Search: " + m.sel.Search
	}
	return "[/]Search: " + m.sel.Search
}

func (m *Model) renderSearchCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.searchCursor.SetChar(char)

	base := m.searchCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.searchCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}

func renderStyled(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
