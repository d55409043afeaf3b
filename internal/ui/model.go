// Package ui is the bubbletea front end. It decodes key presses into
// editor actions and renders the editor state; it never writes to the
// canvas itself.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kaku/internal/engine"
	"kaku/internal/input"
)

const (
	TickInterval = 50 * time.Millisecond
	MinWidth     = 60
	MinHeight    = 20
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	app     *engine.App
	decoder *input.Decoder
	keys    KeyMap
	width   int
	height  int
}

func New(app *engine.App) Model {
	return Model{
		app:     app,
		decoder: input.NewDecoder(),
		keys:    DefaultKeyMap(),
	}
}

// App returns the engine driven by the model.
func (m Model) App() *engine.App { return m.app }

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.app.Tick()
		return m, tick()

	case tea.KeyMsg:
		if m.app.Help() && key.Matches(msg, m.keys.CloseHelp) {
			m.decoder.Reset()
			m.app.Execute(input.Action{Kind: input.ActionToggleHelp})
			return m, nil
		}
		ev, ok := input.FromKeyMsg(msg)
		if !ok {
			return m, nil
		}
		m.app.Execute(m.decoder.Decode(ev))
		if m.app.ShouldQuit() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// required returns the smallest terminal that fits the canvas, its border,
// the sidebar and the three bars.
func (m Model) required() (int, int) {
	view := m.app.View()
	return max(MinWidth, view.Width()+2+sidebarWidth+2), max(MinHeight, view.Height()+2+3)
}

func (m Model) tooSmall() bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	w, h := m.required()
	return m.width < w || m.height < h
}
