package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/cmd/sadhguru/internal/msgs"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/devices"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/engine"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

func newTestModel(t *testing.T) (Model, *session.Controller) {
	t.Helper()
	ctrl := session.NewController("tui", session.NewSetup(lessons.Default(), lessons.TopicOnboard))
	return New(ctrl, engine.DefaultConfig().Form), ctrl
}

func send(t *testing.T, m Model, in ...tea.Msg) Model {
	t.Helper()
	for _, msg := range in {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func keyOf(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true} }

func tabs(n int) []tea.Msg {
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = keyOf(tea.KeyTab)
	}
	return out
}

func TestInitialView(t *testing.T) {
	m, ctrl := newTestModel(t)

	assert.Equal(t, session.ModeGUI, ctrl.Snapshot().Mode)
	assert.Equal(t, "192.168.1.10", m.address.Value())
	assert.Equal(t, "REGKEY123", m.regKey.Value())
	assert.True(t, m.address.Focused())

	v := m.View()
	assert.Contains(t, v, "Practice: Onboard")
	assert.Contains(t, v, "0/3 done")
	assert.Contains(t, v, "No devices yet.")
	assert.NotContains(t, v, "Ready")
}

func TestAddAndApproveDevice(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = send(t, m, tabs(2)...)
	assert.Equal(t, controlAdd, m.focused().kind)
	m = send(t, m, keyOf(tea.KeyEnter))

	rec, ok := ctrl.Snapshot().Devices.Lookup("192.168.1.10")
	require.True(t, ok)
	assert.Equal(t, devices.StatePending, rec.State)
	assert.Equal(t, "REGKEY123", rec.RegistrationKey)
	assert.Contains(t, m.View(), "192.168.1.10")

	m = send(t, m, tabs(2)...)
	c := m.focused()
	require.Equal(t, controlApprove, c.kind)
	assert.Equal(t, "192.168.1.10", c.address)
	m = send(t, m, keyOf(tea.KeyEnter))

	rec, _ = ctrl.Snapshot().Devices.Lookup("192.168.1.10")
	assert.Equal(t, devices.StateApproved, rec.State)
	for _, c := range m.controls() {
		assert.NotEqual(t, controlApprove, c.kind, "approved rows have no approve button")
	}
}

func TestAddDeviceRequiresFields(t *testing.T) {
	m, ctrl := newTestModel(t)
	m.address.SetValue("  ")

	m = send(t, m, tabs(2)...)
	m = send(t, m, keyOf(tea.KeyEnter))
	assert.Equal(t, 0, ctrl.Snapshot().Devices.Len())
}

func TestEnterInKeyFieldSubmits(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = send(t, m, keyOf(tea.KeyEnter))
	assert.Equal(t, controlKey, m.focused().kind)
	assert.True(t, m.regKey.Focused())

	send(t, m, keyOf(tea.KeyEnter))
	assert.Equal(t, 1, ctrl.Snapshot().Devices.Len())
}

func TestCLISubmit(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = send(t, m, keyOf(tea.KeyCtrlT))
	assert.Equal(t, session.ModeCLI, ctrl.Snapshot().Mode)
	assert.True(t, m.prompt.Focused())
	assert.False(t, m.address.Focused())

	m = send(t, m, typed("show version"), keyOf(tea.KeyEnter))
	assert.Equal(t, 2, ctrl.Snapshot().Transcript.Len())
	assert.Empty(t, m.prompt.Value())
	assert.Contains(t, m.View(), "# show version")

	m = send(t, m, typed("clear"), keyOf(tea.KeyEnter))
	assert.Equal(t, 0, ctrl.Snapshot().Transcript.Len())

	send(t, m, keyOf(tea.KeyCtrlT))
	assert.Equal(t, session.ModeGUI, ctrl.Snapshot().Mode)
}

func TestQuickCommands(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = send(t, m, keyOf(tea.KeyCtrlT))

	m = send(t, m, alt("1"))
	lines := ctrl.Snapshot().Transcript.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "# show version", lines[0])

	send(t, m, alt("3"))
	lines = ctrl.Snapshot().Transcript.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "# ping 192.168.1.1", lines[2])
}

func TestQuickCommandsIgnoredInGUI(t *testing.T) {
	m, ctrl := newTestModel(t)
	send(t, m, alt("1"))
	assert.Equal(t, 0, ctrl.Snapshot().Transcript.Len())
}

func TestEchoNATAction(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = send(t, m, keyOf(tea.KeyCtrlN), keyOf(tea.KeyCtrlN))
	require.Equal(t, lessons.TopicNAT, ctrl.Snapshot().Topic)

	m = send(t, m, tabs(4)...)
	require.Equal(t, controlAction, m.focused().kind)

	m = send(t, m, keyOf(tea.KeyEnter))
	assert.Equal(t, 0, ctrl.Snapshot().Transcript.Len())

	m = send(t, m, keyOf(tea.KeyCtrlE), keyOf(tea.KeyEnter))
	assert.True(t, ctrl.Snapshot().Echo.Enabled)
	assert.Equal(t, 3, ctrl.Snapshot().Transcript.Len())

	m = send(t, m, keyOf(tea.KeyCtrlT))
	assert.Contains(t, m.View(), "(config)# object network INSIDE-NET")
}

func TestEchoedAddDevice(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = send(t, m, keyOf(tea.KeyCtrlE))
	send(t, m, append(tabs(2), keyOf(tea.KeyEnter))...)

	lines := ctrl.Snapshot().Transcript.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "# configure manager add 192.168.1.10 REGKEY123", lines[0])
}

func TestTopicCycling(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = send(t, m, keyOf(tea.KeyF1))
	assert.Equal(t, 1, ctrl.Snapshot().Steps.Progress())

	m = send(t, m, keyOf(tea.KeyCtrlP))
	assert.Equal(t, lessons.TopicVPN, ctrl.Snapshot().Topic)
	assert.Equal(t, 1, ctrl.Snapshot().Steps.Progress(), "progress carries across lessons")

	send(t, m, keyOf(tea.KeyCtrlN))
	assert.Equal(t, lessons.TopicOnboard, ctrl.Snapshot().Topic)
	assert.True(t, ctrl.Snapshot().Steps.Done(0))
}

func TestStepToggles(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = send(t, m, keyOf(tea.KeyF1), keyOf(tea.KeyF2), keyOf(tea.KeyF3))
	assert.True(t, ctrl.Snapshot().Steps.Complete())
	assert.Contains(t, m.View(), "Ready")

	m = send(t, m, keyOf(tea.KeyF9))
	assert.Equal(t, 3, ctrl.Snapshot().Steps.Progress())

	send(t, m, keyOf(tea.KeyCtrlR))
	assert.Equal(t, 0, ctrl.Snapshot().Steps.Progress())
}

func TestControlScope(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = send(t, m, keyOf(tea.KeyCtrlN), keyOf(tea.KeyCtrlN))

	countActions := func(m Model) int {
		n := 0
		for _, c := range m.controls() {
			if c.kind == controlAction {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 1, countActions(m))

	m = send(t, m, keyOf(tea.KeyCtrlG))
	assert.False(t, ctrl.Snapshot().RelevantOnly)
	assert.Equal(t, 3, countActions(m))
}

func TestResetSession(t *testing.T) {
	m, ctrl := newTestModel(t)
	initial := ctrl.Snapshot()

	m.address.SetValue("10.9.9.9")
	m = send(t, m, keyOf(tea.KeyCtrlE), keyOf(tea.KeyF1))
	m = send(t, m, append(tabs(2), keyOf(tea.KeyEnter))...)
	m = send(t, m, keyOf(tea.KeyCtrlT))

	m = send(t, m, keyOf(tea.KeyCtrlX))
	assert.Equal(t, initial, ctrl.Snapshot())
	assert.Equal(t, "192.168.1.10", m.address.Value())
	assert.Equal(t, 0, m.focus)
	assert.True(t, m.address.Focused())
}

func TestHintsToggle(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "Peek if stuck")

	m = send(t, m, keyOf(tea.KeyCtrlO))
	assert.True(t, m.showHints)
	assert.Contains(t, m.View(), "Hints")
}

func TestFlash(t *testing.T) {
	m, _ := newTestModel(t)
	at := time.Now()

	m = send(t, m, msgs.FlashMsg{Text: "hello", At: at})
	assert.Contains(t, m.View(), "hello")

	m = send(t, m, msgs.FlashExpiredMsg{At: at.Add(-time.Second)})
	assert.Equal(t, "hello", m.flash, "stale expiry keeps the newer flash")

	m = send(t, m, msgs.FlashExpiredMsg{At: at})
	assert.Empty(t, m.flash)
}

func TestResizeAndQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 160, Height: 48})
	assert.Equal(t, 160, m.width)
	assert.NotEmpty(t, m.View())

	_, cmd := m.Update(keyOf(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTableRowStylesStateColumnOnly(t *testing.T) {
	mark := func(s ...string) string { return "<" + strings.Join(s, "") + ">" }
	cells := []string{"Pending-lab", "ApprovedKey", "-", "Pending"}
	widths := []int{11, 11, 8, 7}

	row := tableRow(cells, widths, 100, mark)
	assert.Equal(t, "Pending-lab  ApprovedKey  -         <Pending>  ", row)

	row = tableRow(cells, widths, 20, mark)
	assert.NotContains(t, row, "<")
	assert.True(t, strings.HasSuffix(row, "…"))
}

func TestDeviceTableKeepsCellsWithStateNames(t *testing.T) {
	m, _ := newTestModel(t)
	m.address.SetValue("Approved-lab")
	m.regKey.SetValue("Pending")
	m = send(t, m, append(tabs(2), keyOf(tea.KeyEnter))...)

	table := m.deviceTable(120)
	assert.Contains(t, table, "Approved-lab")
	assert.Contains(t, table, "Pending")
	assert.Contains(t, table, "Approve")
}
