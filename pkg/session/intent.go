package session

import (
	"strings"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/console"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/echo"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/progress"
)

// Intent is one user action. The set is closed: only this package
// implements it.
type Intent interface {
	Name() string
	apply(setup Setup, s State) State
}

// Reduce returns the state that follows s once in is handled. It never
// mutates s.
func Reduce(setup Setup, s State, in Intent) State {
	return in.apply(setup, s)
}

// SelectTopic switches the lesson. The step checklist carries over unless the
// new lesson has a different number of steps, in which case it starts empty.
// Unknown or already selected topics are ignored.
type SelectTopic struct {
	Topic lessons.Topic
}

func (SelectTopic) Name() string { return "selectTopic" }

func (in SelectTopic) apply(setup Setup, s State) State {
	if in.Topic == s.Topic {
		return s
	}
	l, ok := setup.Catalog.Lookup(in.Topic)
	if !ok {
		return s
	}
	s.Topic = in.Topic
	if s.Steps.Len() != len(l.Steps) {
		s.Steps = progress.New(len(l.Steps))
	}
	return s
}

// ToggleStep flips one step. Index must come from the current checklist.
type ToggleStep struct {
	Index int
}

func (ToggleStep) Name() string { return "toggleStep" }

func (in ToggleStep) apply(_ Setup, s State) State {
	s.Steps = s.Steps.Toggle(in.Index)
	return s
}

// ResetSteps clears the checklist only.
type ResetSteps struct{}

func (ResetSteps) Name() string { return "resetSteps" }

func (ResetSteps) apply(_ Setup, s State) State {
	s.Steps = s.Steps.Reset()
	return s
}

// ResetSession restores every field to its initial value.
type ResetSession struct{}

func (ResetSession) Name() string { return "resetSession" }

func (ResetSession) apply(setup Setup, _ State) State {
	return setup.Initial()
}

// AddDevice registers an appliance from the management console. With echo
// enabled the matching appliance-side manager command is echoed too.
type AddDevice struct {
	Address string
	Key     string
}

func (AddDevice) Name() string { return "addDevice" }

func (in AddDevice) apply(_ Setup, s State) State {
	next := s.Devices.Add(in.Address, in.Key)
	if next.Len() == s.Devices.Len() {
		return s
	}
	s.Devices = next

	if s.Echo.Enabled {
		cmd := console.ManagerAdd(strings.TrimSpace(in.Address), strings.TrimSpace(in.Key))
		s.Transcript = s.Transcript.Append(console.Interpret(cmd).Lines()...)
	}
	return s
}

// AssignLicenses applies the session's license set to every device that is
// not yet approved.
type AssignLicenses struct{}

func (AssignLicenses) Name() string { return "assignLicenses" }

func (AssignLicenses) apply(setup Setup, s State) State {
	s.Devices = s.Devices.AssignLicenses(setup.Licenses)
	return s
}

// ApproveDevice approves the device with Address.
type ApproveDevice struct {
	Address string
}

func (ApproveDevice) Name() string { return "approveDevice" }

func (in ApproveDevice) apply(_ Setup, s State) State {
	s.Devices = s.Devices.Approve(in.Address)
	return s
}

// SetConsoleMode switches between the graphical and command-line console.
type SetConsoleMode struct {
	Mode Mode
}

func (SetConsoleMode) Name() string { return "setConsoleMode" }

func (in SetConsoleMode) apply(_ Setup, s State) State {
	if m, ok := ParseMode(string(in.Mode)); ok {
		s.Mode = m
	}
	return s
}

// ToggleEcho turns echo of graphical actions into the transcript on or off.
type ToggleEcho struct{}

func (ToggleEcho) Name() string { return "toggleEcho" }

func (ToggleEcho) apply(_ Setup, s State) State {
	s.Echo = s.Echo.Toggle()
	return s
}

// ToggleControlScope switches between relevant-only and all controls.
type ToggleControlScope struct{}

func (ToggleControlScope) Name() string { return "toggleControlScope" }

func (ToggleControlScope) apply(_ Setup, s State) State {
	s.RelevantOnly = !s.RelevantOnly
	return s
}

// SubmitCommand runs text typed at the console prompt.
type SubmitCommand struct {
	Text string
}

func (SubmitCommand) Name() string { return "submitCommand" }

func (in SubmitCommand) apply(_ Setup, s State) State {
	return runCommand(s, in.Text)
}

// RunQuickCommand runs a pre-canned shortcut. It behaves like SubmitCommand.
type RunQuickCommand struct {
	Text string
}

func (RunQuickCommand) Name() string { return "runQuickCommand" }

func (in RunQuickCommand) apply(_ Setup, s State) State {
	return runCommand(s, in.Text)
}

// TriggerAction is a graphical control with a CLI equivalent (NAT rule, VPN,
// policy). It only reaches the transcript while echo is enabled.
type TriggerAction struct {
	Action echo.Action
}

func (TriggerAction) Name() string { return "triggerAction" }

func (in TriggerAction) apply(_ Setup, s State) State {
	s.Transcript = s.Transcript.Append(s.Echo.Emit(in.Action)...)
	return s
}

func runCommand(s State, text string) State {
	r := console.Interpret(text)
	switch {
	case r.Command == console.CommandNone:
		return s
	case r.Clear:
		s.Transcript = Transcript{}
	default:
		s.Transcript = s.Transcript.Append(r.Lines()...)
	}
	return s
}
