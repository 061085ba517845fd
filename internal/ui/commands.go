package ui

import (
	"context"
	"time"

	"github.com/cescofry/recp/internal/history"
	"github.com/cescofry/recp/internal/logging"
	"github.com/cescofry/recp/internal/logging/events"
	uistate "github.com/cescofry/recp/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const historyLoadTimeout = 5 * time.Second

// historyLoadedMsg carries the result of the one-off history load.
type historyLoadedMsg struct {
	lines []string
	err   error
}

func loadHistoryCmd(source history.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyLoadTimeout)
		defer cancel()
		lines, err := source.Lines(ctx)
		if err != nil {
			logging.Error(err)
		}
		return historyLoadedMsg{lines: lines, err: err}
	}
}

func (m *Model) handleHistoryLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(historyLoadedMsg)
	if !ok {
		return nil
	}
	m.history.SetLines(loaded.lines)
	m.history.SetErr(loaded.err)
	if loaded.err != nil {
		events.History.Degraded(loaded.err)
	}
	m.refreshVisible()
	m.sel = uistate.Normalize(m.sel, m.visible)
	return nil
}
