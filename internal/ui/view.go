package ui

import (
	"fmt"
	"strings"

	"github.com/cescofry/recp/internal/format/table"
	"github.com/cescofry/recp/internal/recipes"
	uistate "github.com/cescofry/recp/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	statusSeparator = "   "
	emptyRecipes    = "No Recipe found. Choose from History"
	emptyHistory    = "No History found !!!"
	loadingHistory  = "Loading history…"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.refreshVisible()
	m.sel = uistate.Normalize(m.sel, m.visible)

	bodyHeight := m.height - 1
	body := make([]string, 0, bodyHeight)
	body = append(body, m.topLine())
	for _, pane := range m.shownPanes() {
		body = append(body, m.renderPane(pane)...)
	}
	body = fitHeight(body, bodyHeight)
	body = overlay(body, m.overlayBox(), m.width)
	body = append(body, m.statusBar())
	return strings.Join(body, "\n")
}

func (m *Model) shownPanes() []uistate.Pane {
	if m.sel.HideOther {
		return []uistate.Pane{m.sel.Pane}
	}
	return []uistate.Pane{uistate.PaneRecipes, uistate.PaneHistory}
}

// topLine is the spacer row above the panes; it carries errors and
// transient info.
func (m *Model) topLine() string {
	if m.errMsg != "" {
		return renderStyled(styles.Error, clip("Error: "+m.errMsg, m.width))
	}
	if info := m.currentInfo(); info != "" {
		return renderStyled(styles.Info, clip(info, m.width))
	}
	return ""
}

func (m *Model) renderPane(pane uistate.Pane) []string {
	height := uistate.PaneHeight(m.height, m.sel.HideOther)
	width := m.width - 2
	innerWidth := width - 2
	title := pane.String()
	if pane == uistate.PaneRecipes && m.sel.ShowInfo && m.recipes != nil {
		title = fmt.Sprintf("%s   -> %s", title, m.recipes.Source())
	}
	titleStyle := styles.PaneTitle
	borderStyle := styles.Border
	if pane == m.sel.Pane {
		titleStyle = styles.Accent
		borderStyle = styles.ActiveBorder
	}
	var content []string
	if pane == uistate.PaneRecipes {
		content = m.recipeLines(innerWidth)
	} else {
		content = m.historyLines(innerWidth)
	}
	box := renderBox(title, titleStyle, borderStyle, content, width, height)
	for i, line := range box {
		box[i] = " " + line
	}
	return box
}

func (m *Model) recipeLines(width int) []string {
	if len(m.recipeRows) == 0 {
		lines := []string{renderStyled(styles.Info, clip(emptyRecipes, width))}
		if m.recipes != nil {
			all := m.recipes.Recipes()
			candidates := make([]string, len(all))
			for i, r := range all {
				candidates[i] = recipeSearchText(r)
			}
			lines = append(lines, m.closestMatchLine(candidates, width)...)
		}
		return lines
	}
	rows := make([][]string, len(m.recipeRows))
	for i, r := range m.recipeRows {
		rows[i] = recipeCells(i, r, m.sel.ShowInfo)
	}
	if m.sel.ShowInfo {
		rows = table.Pad(rows)
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		label := clip(row[0], width)
		line := renderStyled(m.rowStyle(uistate.PaneRecipes, i), label)
		if len(row) > 1 {
			if rest := width - lipgloss.Width(label) - len(table.Separator()); rest > 0 {
				line += table.Separator() + renderStyled(styles.Accent, clip(row[1], rest))
			}
		}
		lines[i] = line
	}
	return lines
}

func recipeCells(index int, r recipes.Recipe, withInfo bool) []string {
	label := fmt.Sprintf("[%d] %s", index, r.Title)
	if !withInfo {
		return []string{label}
	}
	return []string{label, "# " + strings.TrimSpace(r.Command)}
}

func (m *Model) historyLines(width int) []string {
	if len(m.historyRows) == 0 {
		if !m.history.Loaded() && m.source != nil {
			return []string{renderStyled(styles.Hint, clip(loadingHistory, width))}
		}
		lines := []string{renderStyled(styles.Info, clip(emptyHistory, width))}
		return append(lines, m.closestMatchLine(m.history.Lines(), width)...)
	}
	lines := make([]string, len(m.historyRows))
	for i, line := range m.historyRows {
		text := clip(fmt.Sprintf("[%d] %s", i, strings.TrimSpace(line)), width)
		lines[i] = renderStyled(m.rowStyle(uistate.PaneHistory, i), text)
	}
	return lines
}

func (m *Model) closestMatchLine(candidates []string, width int) []string {
	match, ok := uistate.ClosestMatch(candidates, m.sel.Search)
	if !ok {
		return nil
	}
	return []string{renderStyled(styles.Hint, clip("Closest match: "+strings.TrimSpace(match), width))}
}

func (m *Model) rowStyle(pane uistate.Pane, index int) *lipgloss.Style {
	if pane == m.sel.Pane && index == m.sel.Highlight {
		return styles.SelectedItem
	}
	return styles.Item
}

func (m *Model) statusItems() []string {
	switch m.sel.Prompt {
	case uistate.PromptRecipeName:
		return []string{"[Enter]Save", "[ESC]Cancel"}
	case uistate.PromptDeleteConfirm:
		return []string{"[y]es", "[N]o"}
	}
	selected := m.sel.HasSelection()
	if m.sel.Mode == uistate.ModeSearch {
		return compact(
			"[Tab]Switch",
			when(selected, "[Enter]Run Selected"),
			"[ESC]Actions",
			m.searchLabel(),
		)
	}
	hide := "[H]Hide"
	if m.sel.HideOther {
		hide = "[H]Show"
	}
	return compact(
		"[Q]uit",
		"[+]Info",
		"[Tab]Switch",
		hide,
		when(selected, "[Enter]Run Selected"),
		when(selected && m.sel.Pane == uistate.PaneHistory, "[S]ave"),
		when(selected && m.sel.Pane == uistate.PaneRecipes, "[D]elete"),
		when(selected, "[C]opy"),
		m.searchLabel(),
	)
}

func (m *Model) statusBar() string {
	caret := ""
	if m.sel.Mode == uistate.ModeSearch && m.sel.Prompt == uistate.PromptNone {
		caret = m.renderSearchCursor(" ")
	}
	text := clip(strings.Join(m.statusItems(), statusSeparator), m.width-lipgloss.Width(caret))
	line := renderStyled(styles.StatusBar, text) + caret
	if pad := m.width - lipgloss.Width(text) - lipgloss.Width(caret); pad > 0 {
		line += renderStyled(styles.StatusBar, strings.Repeat(" ", pad))
	}
	return line
}

func when(ok bool, text string) string {
	if !ok {
		return ""
	}
	return text
}

func compact(items ...string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// renderBox draws a rounded box of exactly height rows and width columns
// with title set into the top border. Content rows may carry ANSI styling.
func renderBox(title string, titleStyle, borderStyle *lipgloss.Style, content []string, width, height int) []string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	if width < 4 || height < 2 {
		return nil
	}
	innerW := width - 2
	innerH := height - 2

	titleSeg := " " + title + " "
	dashes := width - 4 - lipgloss.Width(titleSeg)
	if dashes < 0 {
		titleSeg = clip(titleSeg, width-4)
		dashes = width - 4 - lipgloss.Width(titleSeg)
	}
	topLine := renderStyled(borderStyle, tlc+hz) +
		renderStyled(titleStyle, titleSeg) +
		renderStyled(borderStyle, strings.Repeat(hz, dashes)) +
		renderStyled(borderStyle, hz+trc)
	bottomLine := renderStyled(borderStyle, blc+strings.Repeat(hz, innerW)+brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var line string
		if i < len(content) {
			line = content[i]
		}
		w := lipgloss.Width(line)
		if w > innerW {
			line = truncate.StringWithTail(line, uint(innerW), "…")
			w = lipgloss.Width(line)
		}
		if w < innerW {
			line += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, renderStyled(borderStyle, vt)+line+renderStyled(borderStyle, vt))
	}
	rows = append(rows, bottomLine)
	return rows
}

// fitHeight pads or trims lines to exactly height rows.
func fitHeight(lines []string, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// clip truncates text to width terminal cells, marking the cut with an
// ellipsis.
func clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
