package ui

import (
	"reflect"
	"time"

	"github.com/cescofry/recp/internal/data/dispatcher"
	"github.com/cescofry/recp/internal/history"
	"github.com/cescofry/recp/internal/recipes"
	"github.com/cescofry/recp/internal/state"
	"github.com/cescofry/recp/internal/theme"
	uistate "github.com/cescofry/recp/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Recipes state.RecipeStore
	History history.Source
	// Width and Height seed the layout until the first WindowSizeMsg.
	Width  int
	Height int
	Debug  bool
	// Blink enables the blinking search caret. Tests leave it off so the
	// harness never waits on blink timers.
	Blink   bool
	Version string
}

// Model implements the Bubble Tea model for the recp launcher.
type Model struct {
	sel         uistate.Selection
	visible     uistate.Visible
	recipeRows  []recipes.Recipe
	historyRows []string

	width  int
	height int

	debug      bool
	debugMsg   string
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	searchCursor      cursor.Model
	searchCursorDirty bool
	nameInput         textinput.Model

	handlers map[reflect.Type]msgHandler

	recipes    state.RecipeStore
	history    state.HistoryStore
	source     history.Source
	dispatcher *dispatcher.Dispatcher
}

// NewModel builds the UI around the given recipe store and history source.
func NewModel(opts Options) *Model {
	m := &Model{
		sel:        uistate.New(),
		width:      opts.Width,
		height:     opts.Height,
		debug:      opts.Debug,
		recipes:    opts.Recipes,
		history:    state.NewHistoryStore(),
		source:     opts.History,
		dispatcher: dispatcher.New(opts.Recipes),
	}
	if opts.Version != "" {
		m.debugMsg = "Version: " + opts.Version
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	if !opts.Blink {
		c.SetMode(cursor.CursorStatic)
	}
	c.SetChar(" ")
	m.searchCursor = c
	m.nameInput = newNameInput()
	m.registerHandlers()
	m.refreshVisible()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.source != nil {
		cmds = append(cmds, loadHistoryCmd(m.source))
	}
	if cmd := m.searchCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateSearchCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(historyLoadedMsg{}):  m.handleHistoryLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchCursorDirty {
		m.searchCursorDirty = false
		m.searchCursor.Blink = false
		if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Selection returns the current selection state.
func (m *Model) Selection() uistate.Selection {
	return m.sel
}

// Outcome returns the command chosen for execution or copy, or nil when the
// user quit.
func (m *Model) Outcome() *uistate.Pending {
	if m.sel.Pending == nil {
		return nil
	}
	pending := *m.sel.Pending
	return &pending
}

// Err returns the last error shown in the status line.
func (m *Model) Err() string {
	return m.errMsg
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	m.refreshVisible()
	m.sel = uistate.Normalize(m.sel, m.visible)
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
