package ui

import (
	"strings"
	"unicode/utf8"

	uistate "github.com/cescofry/recp/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const (
	namePromptWidth   = 40
	deletePromptWidth = 100
	debugMargin       = 10
)

func newNameInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "recipe-name"
	ti.CharLimit = 64
	ti.Prompt = "> "
	ti.Focus()
	return ti
}

// overlayBox returns the modal box drawn over the panes: the active prompt,
// or the debug box when debugging is enabled.
func (m *Model) overlayBox() []string {
	switch m.sel.Prompt {
	case uistate.PromptRecipeName:
		return m.namePromptBox()
	case uistate.PromptDeleteConfirm:
		return m.deletePromptBox()
	}
	if m.debug {
		return m.debugBox()
	}
	return nil
}

func (m *Model) namePromptBox() []string {
	width := min(namePromptWidth, m.width)
	m.nameInput.SetValue(m.sel.Name)
	m.nameInput.CursorEnd()
	hint := "$ " + strings.TrimSpace(m.sel.Target)
	if utf8.RuneCountInString(strings.TrimSpace(m.sel.Name)) < uistate.MinNameLength {
		hint = "at least 2 characters, [ESC] to cancel"
	}
	content := []string{
		m.nameInput.View(),
		renderStyled(styles.Hint, clip(hint, width-2)),
	}
	return renderBox("Recipe Name", styles.PromptTitle, styles.ActiveBorder, content, width, len(content)+2)
}

func (m *Model) deletePromptBox() []string {
	width := min(deletePromptWidth, m.width-2)
	content := []string{
		renderStyled(styles.PromptBody, clip("Recipe: "+strings.TrimSpace(m.sel.Target), width-2)),
		renderStyled(styles.PromptBody, clip("Are you sure you want to delete? [y]es/[N]o", width-2)),
	}
	return renderBox("Delete", styles.PromptTitle, styles.ActiveBorder, content, width, len(content)+2)
}

func (m *Model) debugBox() []string {
	lines := []string{}
	if m.debugMsg != "" {
		lines = append(lines, m.debugMsg)
	}
	if info := m.currentInfo(); info != "" && info != m.debugMsg {
		lines = append(lines, info)
	}
	if err := m.history.Err(); err != nil {
		lines = append(lines, "History: "+err.Error())
	}
	if len(lines) == 0 {
		return nil
	}
	width := m.width - debugMargin
	content := make([]string, len(lines))
	for i, line := range lines {
		content[i] = renderStyled(styles.Debug, clip(line, width-2))
	}
	return renderBox("Debug", styles.PromptTitle, styles.ActiveBorder, content, width, len(content)+2)
}

// overlay centres box over body, replacing the rows it covers.
func overlay(body, box []string, width int) []string {
	if len(box) == 0 || len(box) > len(body) {
		return body
	}
	out := make([]string, len(body))
	copy(out, body)
	boxWidth := 0
	for _, line := range box {
		boxWidth = max(boxWidth, lipgloss.Width(line))
	}
	x := max((width-boxWidth)/2, 0)
	y := (len(body) - len(box)) / 2
	for i, line := range box {
		out[y+i] = strings.Repeat(" ", x) + line
	}
	return out
}
