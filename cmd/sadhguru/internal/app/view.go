package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/cmd/sadhguru/internal/styles"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

// View implements tea.Model.
func (m Model) View() string {
	lw := m.lessonWidth()
	cw := max(m.width-lw-4, 20)

	lesson := styles.PaneBorder.Width(lw).Render(m.viewLesson(lw - 2))

	var body string
	if m.cli() {
		body = m.viewCLI()
	} else {
		body = m.viewGUI(cw)
	}
	consolePane := styles.FocusedBorder.Width(cw).Render(m.viewConsoleHeader() + "\n\n" + body)

	main := lipgloss.JoinHorizontal(lipgloss.Top, lesson, consolePane)

	var footer strings.Builder
	if m.flash != "" {
		footer.WriteString(styles.StatusStyle.Render(" " + m.flash))
	}
	footer.WriteString("\n")
	footer.WriteString(m.help.View(m.keys))

	return main + "\n" + footer.String()
}

func (m Model) viewConsoleHeader() string {
	s := m.ctrl.Snapshot()

	gui, cli := styles.TabInactive.Render("GUI"), styles.TabInactive.Render("CLI")
	if s.Mode == session.ModeCLI {
		cli = styles.TabActive.Render("CLI")
	} else {
		gui = styles.TabActive.Render("GUI")
	}

	echoBadge := styles.OffBadge.Render("echo off")
	if s.Echo.Enabled {
		echoBadge = styles.OnBadge.Render("echo on")
	}

	scope := "all controls"
	if s.RelevantOnly {
		scope = "relevant only"
	}

	return fmt.Sprintf("%s %s %s   %s   %s",
		styles.TitleStyle.Render("Console"), gui, cli, echoBadge, styles.DimStyle.Render(scope))
}

func (m Model) viewLesson(width int) string {
	s := m.ctrl.Snapshot()
	l, _ := m.catalog.Lookup(s.Topic)

	var b strings.Builder

	var topics []string
	for _, t := range m.catalog.Lessons() {
		if t.Topic == s.Topic {
			topics = append(topics, styles.TopicActive.Render(t.Title))
		} else {
			topics = append(topics, styles.TopicInactive.Render(t.Title))
		}
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Render(strings.Join(topics, "  ")))
	b.WriteString("\n\n")

	b.WriteString(styles.LabelBadge.Render(l.Label))
	b.WriteString("  ")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%d/%d done", s.Steps.Progress(), s.Steps.Len())))
	if s.Steps.Complete() {
		b.WriteString("  ")
		b.WriteString(styles.ReadyBadge.Render("Ready"))
	}
	b.WriteString("\n\n")

	for i, title := range l.Steps {
		box := "[ ]"
		line := title
		if s.Steps.Done(i) {
			box = "[x]"
			line = styles.StepDone.Render(title)
		}
		row := fmt.Sprintf("%s %s %s", styles.DimStyle.Render(fmt.Sprintf("f%d", i+1)), box, line)
		b.WriteString(lipgloss.NewStyle().Width(width).Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.showHints {
		b.WriteString(styles.TitleStyle.Render("Hints"))
		b.WriteString("\n")
		b.WriteString(m.hints.render(l.HintMarkdown(), width))
	} else {
		b.WriteString(styles.DimStyle.Render("Peek if stuck: ctrl+o shows hints"))
	}

	return b.String()
}

// hintRenderer renders hint markdown, rebuilding the glamour renderer only
// when the wrap width changes.
type hintRenderer struct {
	r     *glamour.TermRenderer
	width int
}

func (h *hintRenderer) render(md string, width int) string {
	if h.r == nil || h.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("light"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		h.r, h.width = r, width
	}

	out, err := h.r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
