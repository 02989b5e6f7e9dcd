// Package app is the terminal practice UI: a lesson panel next to a
// switchable graphical or command-line console, all driven through one
// session.Controller.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/cmd/sadhguru/internal/msgs"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/console"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/engine"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

const flashDuration = 3 * time.Second

// Model is the root bubbletea model.
type Model struct {
	ctrl    *session.Controller
	catalog lessons.Catalog
	form    engine.FormConfig

	keys keyMap
	help help.Model

	address    textinput.Model
	regKey     textinput.Model
	prompt     textinput.Model
	transcript viewport.Model

	focus     int // index into controls() while in GUI mode
	showHints bool
	hints     *hintRenderer

	flash   string
	flashAt time.Time

	width  int
	height int
}

// New creates the UI for ctrl. The add-device form starts pre-filled from form.
func New(ctrl *session.Controller, form engine.FormConfig) Model {
	m := Model{
		ctrl:       ctrl,
		catalog:    ctrl.Setup().Catalog,
		form:       form,
		keys:       defaultKeyMap(),
		help:       help.New(),
		address:    newInput("Device address", form.Address),
		regKey:     newInput("Registration key", form.RegistrationKey),
		prompt:     newPrompt(),
		transcript: viewport.New(60, 12),
		hints:      &hintRenderer{},
		width:      100,
		height:     30,
	}
	m.applyMode()
	m.layout()
	return m
}

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 24
	ti.SetValue(value)
	return ti
}

func newPrompt() textinput.Model {
	ti := textinput.New()
	ti.Prompt = console.Prompt
	ti.Placeholder = "type a command, e.g. show version"
	ti.CharLimit = 256
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case msgs.FlashMsg:
		m.flash, m.flashAt = msg.Text, msg.At
		at := msg.At
		return m, tea.Tick(flashDuration, func(time.Time) tea.Msg {
			return msgs.FlashExpiredMsg{At: at}
		})

	case msgs.FlashExpiredMsg:
		if msg.At.Equal(m.flashAt) {
			m.flash = ""
		}
		return m, nil
	}

	if m.cli() {
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleMode):
		mode := session.ModeCLI
		if m.cli() {
			mode = session.ModeGUI
		}
		m.dispatch(session.SetConsoleMode{Mode: mode})
		return m, m.applyMode()

	case key.Matches(msg, m.keys.ToggleEcho):
		m.dispatch(session.ToggleEcho{})
		state := "off"
		if m.ctrl.Snapshot().Echo.Enabled {
			state = "on"
		}
		return m, flash("Echo " + state)

	case key.Matches(msg, m.keys.ToggleHints):
		m.showHints = !m.showHints
		return m, nil

	case key.Matches(msg, m.keys.ToggleScope):
		m.dispatch(session.ToggleControlScope{})
		m.clampFocus()
		return m, m.applyMode()

	case key.Matches(msg, m.keys.ResetSteps):
		m.dispatch(session.ResetSteps{})
		return m, flash("Steps reset")

	case key.Matches(msg, m.keys.ResetSession):
		m.dispatch(session.ResetSession{})
		m.address.SetValue(m.form.Address)
		m.regKey.SetValue(m.form.RegistrationKey)
		m.prompt.Reset()
		m.focus = 0
		m.showHints = false
		return m, tea.Batch(m.applyMode(), flash("Session reset"))

	case key.Matches(msg, m.keys.NextTopic):
		m.cycleTopic(1)
		return m, m.applyMode()

	case key.Matches(msg, m.keys.PrevTopic):
		m.cycleTopic(-1)
		return m, m.applyMode()

	case key.Matches(msg, m.keys.ToggleStep):
		idx := int(msg.String()[1] - '1')
		if idx < m.ctrl.Snapshot().Steps.Len() {
			m.dispatch(session.ToggleStep{Index: idx})
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if m.cli() {
		return m.handleCLIKey(msg)
	}
	return m.handleGUIKey(msg)
}

func (m *Model) dispatch(in session.Intent) session.State {
	s := m.ctrl.Dispatch(in)
	m.refreshTranscript()
	return s
}

func (m *Model) cycleTopic(delta int) {
	topics := m.catalog.Topics()
	if len(topics) == 0 {
		return
	}
	cur := 0
	for i, t := range topics {
		if t == m.ctrl.Snapshot().Topic {
			cur = i
			break
		}
	}
	next := (cur + delta + len(topics)) % len(topics)
	m.dispatch(session.SelectTopic{Topic: topics[next]})
	m.clampFocus()
}

func (m Model) cli() bool {
	return m.ctrl.Snapshot().Mode == session.ModeCLI
}

// applyMode moves keyboard focus to the inputs of the current console mode.
func (m *Model) applyMode() tea.Cmd {
	cli := m.cli()
	m.keys.setMode(cli)
	m.refreshTranscript()

	if cli {
		m.address.Blur()
		m.regKey.Blur()
		return m.prompt.Focus()
	}
	m.prompt.Blur()
	return m.focusControl()
}

func (m *Model) layout() {
	lw := m.lessonWidth()
	cw := max(m.width-lw-4, 20)

	m.prompt.Width = max(cw-6, 10)
	m.transcript.Width = cw - 4

	// Header, prompt, quick commands, flash and help footer.
	reserved := 10
	if m.help.ShowAll {
		reserved += 5
	}
	m.transcript.Height = max(m.height-reserved, 4)
	m.refreshTranscript()
}

func (m Model) lessonWidth() int {
	return min(max(m.width*2/5, 32), 56)
}

func flash(text string) tea.Cmd {
	at := time.Now()
	return func() tea.Msg { return msgs.FlashMsg{Text: text, At: at} }
}
