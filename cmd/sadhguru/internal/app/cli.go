package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/cmd/sadhguru/internal/styles"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/console"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

func (m Model) handleCLIKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := m.prompt.Value()
		m.prompt.Reset()
		m.dispatch(session.SubmitCommand{Text: text})
		return m, nil

	case key.Matches(msg, m.keys.QuickCommand):
		idx := int(msg.String()[len("alt+")] - '1')
		if idx >= 0 && idx < len(console.QuickCommands) {
			m.dispatch(session.RunQuickCommand{Text: console.QuickCommands[idx]})
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// refreshTranscript re-renders the transcript into the viewport and keeps
// the newest line visible.
func (m *Model) refreshTranscript() {
	lines := m.ctrl.Snapshot().Transcript.Lines()
	if len(lines) == 0 {
		m.transcript.SetContent(styles.DimStyle.Render("Console is empty. Try `show version`."))
		return
	}

	rendered := make([]string, len(lines))
	for i, l := range lines {
		if strings.HasPrefix(l, console.Prompt) {
			rendered[i] = styles.EchoStyle.Render(l)
		} else {
			rendered[i] = l
		}
	}
	m.transcript.SetContent(strings.Join(rendered, "\n"))
	m.transcript.GotoBottom()
}

func (m Model) viewCLI() string {
	var b strings.Builder
	b.WriteString(m.transcript.View())
	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	b.WriteString("\n")

	quick := make([]string, len(console.QuickCommands))
	for i, qc := range console.QuickCommands {
		quick[i] = fmt.Sprintf("%s %s", styles.PromptStyle.Render(fmt.Sprintf("alt+%d", i+1)), qc)
	}
	b.WriteString(styles.DimStyle.Render("quick: ") + strings.Join(quick, styles.DimStyle.Render(" · ")))
	b.WriteString("\n")
	return b.String()
}
