package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the practice UI. Bindings that only apply to
// one console mode are enabled and disabled as the mode changes.
type keyMap struct {
	Quit         key.Binding
	ToggleMode   key.Binding
	ToggleEcho   key.Binding
	ToggleHints  key.Binding
	ToggleScope  key.Binding
	ResetSteps   key.Binding
	ResetSession key.Binding
	NextTopic    key.Binding
	PrevTopic    key.Binding
	ToggleStep   key.Binding
	ToggleHelp   key.Binding
	NextControl  key.Binding
	PrevControl  key.Binding
	Activate     key.Binding
	Submit       key.Binding
	QuickCommand key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		ToggleMode:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "gui/cli")),
		ToggleEcho:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "echo")),
		ToggleHints:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "hints")),
		ToggleScope:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "relevant/all")),
		ResetSteps:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset steps")),
		ResetSession: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "reset all")),
		NextTopic:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next lesson")),
		PrevTopic:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev lesson")),
		ToggleStep: key.NewBinding(
			key.WithKeys("f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9"),
			key.WithHelp("f1-f9", "toggle step"),
		),
		ToggleHelp:  key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "more keys")),
		NextControl: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		PrevControl: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev control")),
		Activate:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		QuickCommand: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4"),
			key.WithHelp("alt+1-4", "quick command"),
		),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	}
}

// setMode enables the bindings of the given console mode.
func (k *keyMap) setMode(cli bool) {
	k.NextControl.SetEnabled(!cli)
	k.PrevControl.SetEnabled(!cli)
	k.Activate.SetEnabled(!cli)
	k.Submit.SetEnabled(cli)
	k.QuickCommand.SetEnabled(cli)
	k.ScrollUp.SetEnabled(cli)
	k.ScrollDown.SetEnabled(cli)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMode, k.ToggleEcho, k.ToggleStep, k.ToggleHints, k.NextControl, k.QuickCommand, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleMode, k.ToggleEcho, k.ToggleScope, k.ToggleHints},
		{k.NextTopic, k.PrevTopic, k.ToggleStep, k.ResetSteps, k.ResetSession},
		{k.NextControl, k.PrevControl, k.Activate},
		{k.Submit, k.QuickCommand, k.ScrollUp, k.ScrollDown},
		{k.ToggleHelp, k.Quit},
	}
}
