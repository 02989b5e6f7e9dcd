package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/cmd/sadhguru/internal/styles"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/echo"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

type controlKind int

const (
	controlAddress controlKind = iota
	controlKey
	controlAdd
	controlAssign
	controlApprove
	controlAction
)

// control is one focusable element of the graphical console.
type control struct {
	kind    controlKind
	address string      // controlApprove
	action  echo.Action // controlAction
}

// controls lists the focusable elements in tab order. Approve buttons exist
// only for rows that are not yet approved.
func (m Model) controls() []control {
	s := m.ctrl.Snapshot()

	out := []control{{kind: controlAddress}, {kind: controlKey}, {kind: controlAdd}, {kind: controlAssign}}
	for _, rec := range s.Devices.Records() {
		if !rec.Approved() {
			out = append(out, control{kind: controlApprove, address: rec.Address})
		}
	}
	for _, a := range m.catalog.VisibleActions(s.Topic, s.RelevantOnly) {
		out = append(out, control{kind: controlAction, action: a})
	}
	return out
}

func (m Model) focused() control {
	ctls := m.controls()
	if m.focus < 0 || m.focus >= len(ctls) {
		return control{kind: controlAddress}
	}
	return ctls[m.focus]
}

func (m *Model) clampFocus() {
	if n := len(m.controls()); m.focus >= n {
		m.focus = n - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

// focusControl focuses the text input under the cursor, if any.
func (m *Model) focusControl() tea.Cmd {
	m.address.Blur()
	m.regKey.Blur()
	switch m.focused().kind {
	case controlAddress:
		return m.address.Focus()
	case controlKey:
		return m.regKey.Focus()
	}
	return nil
}

func (m Model) handleGUIKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextControl):
		m.focus = (m.focus + 1) % len(m.controls())
		return m, m.focusControl()

	case key.Matches(msg, m.keys.PrevControl):
		n := len(m.controls())
		m.focus = (m.focus - 1 + n) % n
		return m, m.focusControl()

	case key.Matches(msg, m.keys.Activate):
		return m.activate()
	}

	var cmd tea.Cmd
	switch m.focused().kind {
	case controlAddress:
		m.address, cmd = m.address.Update(msg)
	case controlKey:
		m.regKey, cmd = m.regKey.Update(msg)
	}
	return m, cmd
}

// activate presses the focused control. Enter in the address field moves on
// to the key field; enter in the key field submits the form.
func (m Model) activate() (tea.Model, tea.Cmd) {
	c := m.focused()
	switch c.kind {
	case controlAddress:
		m.focus = 1
		return m, m.focusControl()

	case controlKey, controlAdd:
		return m, m.addDevice()

	case controlAssign:
		m.dispatch(session.AssignLicenses{})
		return m, flash("Licenses assigned")

	case controlApprove:
		m.dispatch(session.ApproveDevice{Address: c.address})
		m.clampFocus()
		return m, tea.Batch(m.focusControl(), flash("Approved "+c.address))

	case controlAction:
		s := m.dispatch(session.TriggerAction{Action: c.action})
		if !s.Echo.Enabled {
			return m, flash(c.action.Label() + " applied")
		}
		return m, flash(c.action.Label() + " applied, see CLI")
	}
	return m, nil
}

func (m *Model) addDevice() tea.Cmd {
	addr := strings.TrimSpace(m.address.Value())
	k := strings.TrimSpace(m.regKey.Value())
	if addr == "" || k == "" {
		return flash("Address and registration key are required")
	}

	before := m.ctrl.Snapshot().Devices.Len()
	after := m.dispatch(session.AddDevice{Address: addr, Key: k}).Devices.Len()
	if after == before {
		return flash(addr + " is already registered")
	}
	return flash("Added " + addr + ", pending approval")
}

func (m Model) viewGUI(width int) string {
	s := m.ctrl.Snapshot()
	var b strings.Builder

	// Tabs of the mock management console.
	var tabs []string
	for _, t := range m.catalog.VisibleTabs(s.Topic, s.RelevantOnly) {
		if t == "Devices" {
			tabs = append(tabs, styles.TabActive.Render(t))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(t))
		}
	}
	b.WriteString(strings.Join(tabs, styles.DimStyle.Render(" │ ")))
	b.WriteString("\n")
	if s.RelevantOnly {
		b.WriteString(styles.DimStyle.Render("Showing only what this lesson needs. ctrl+g shows everything."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Add-device form.
	b.WriteString(m.fieldRow("Address", m.address.View(), controlAddress))
	b.WriteString(m.fieldRow("Key", m.regKey.View(), controlKey))
	b.WriteString(m.button("Add Device", controlAdd, ""))
	b.WriteString(" ")
	b.WriteString(m.button("Assign Licenses", controlAssign, ""))
	b.WriteString("\n\n")

	b.WriteString(m.deviceTable(width))

	if actions := m.catalog.VisibleActions(s.Topic, s.RelevantOnly); len(actions) > 0 {
		b.WriteString("\n")
		for i, a := range actions {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(m.actionButton(a))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) fieldRow(label, input string, kind controlKind) string {
	marker := "  "
	if m.focused().kind == kind {
		marker = styles.RowFocused.Render("› ")
	}
	return fmt.Sprintf("%s%-8s %s\n", marker, label, input)
}

func (m Model) button(label string, kind controlKind, address string) string {
	c := m.focused()
	if c.kind == kind && c.address == address {
		return styles.ButtonFocused.Render(label)
	}
	return styles.Button.Render(label)
}

func (m Model) actionButton(a echo.Action) string {
	c := m.focused()
	if c.kind == controlAction && c.action == a {
		return styles.ButtonFocused.Render(a.Label())
	}
	return styles.Button.Render(a.Label())
}

// deviceTable renders the device rows with columns fitted to their content.
func (m Model) deviceTable(width int) string {
	recs := m.ctrl.Snapshot().Devices.Records()
	if len(recs) == 0 {
		return styles.DimStyle.Render("No devices yet.") + "\n"
	}

	header := []string{"ADDRESS", "KEY", "LICENSES", "STATE"}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		licenses := "-"
		if len(r.Licenses) > 0 {
			licenses = strings.Join(r.Licenses, ", ")
		}
		rows = append(rows, []string{r.Address, r.RegistrationKey, licenses, r.State.String()})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	limit := max(width-12, 20)

	var b strings.Builder
	b.WriteString(styles.TableHeader.Render(tableRow(header, widths, limit, nil)))
	b.WriteString("\n")
	for i, r := range rows {
		rec := recs[i]
		if rec.Approved() {
			b.WriteString(tableRow(r, widths, limit, styles.StateApproved.Render))
		} else {
			b.WriteString(tableRow(r, widths, limit, styles.StatePending.Render))
			b.WriteString(m.button("Approve", controlApprove, rec.Address))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// tableRow pads each cell to its column width. The last cell is passed
// through state when set. Rows wider than limit are truncated unstyled.
func tableRow(cells []string, widths []int, limit int, state func(...string) string) string {
	var plain strings.Builder
	for i, cell := range cells {
		plain.WriteString(runewidth.FillRight(cell, widths[i]+2))
	}
	if state == nil || runewidth.StringWidth(plain.String()) > limit {
		return runewidth.Truncate(plain.String(), limit, "…")
	}

	var b strings.Builder
	last := len(cells) - 1
	for i, cell := range cells[:last] {
		b.WriteString(runewidth.FillRight(cell, widths[i]+2))
	}
	b.WriteString(state(cells[last]))
	b.WriteString(strings.Repeat(" ", widths[last]+2-runewidth.StringWidth(cells[last])))
	return b.String()
}
