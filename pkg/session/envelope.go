package session

import (
	"errors"
	"fmt"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/echo"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
)

// ErrUnknownIntent is returned when an envelope names no known intent.
var ErrUnknownIntent = errors.New("session: unknown intent")

// Envelope is the wire form of an intent used by scripts and remote
// adapters. Only the fields the named intent needs are read.
type Envelope struct {
	Intent  string `json:"intent" yaml:"intent"`
	Topic   string `json:"topic,omitempty" yaml:"topic,omitempty"`
	Index   int    `json:"index,omitempty" yaml:"index,omitempty"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	Key     string `json:"key,omitempty" yaml:"key,omitempty"`
	Mode    string `json:"mode,omitempty" yaml:"mode,omitempty"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Action  string `json:"action,omitempty" yaml:"action,omitempty"`
}

// Decode resolves the envelope to an Intent.
func (e Envelope) Decode() (Intent, error) {
	switch e.Intent {
	case SelectTopic{}.Name():
		return SelectTopic{Topic: lessons.Topic(e.Topic)}, nil
	case ToggleStep{}.Name():
		return ToggleStep{Index: e.Index}, nil
	case ResetSteps{}.Name():
		return ResetSteps{}, nil
	case ResetSession{}.Name():
		return ResetSession{}, nil
	case AddDevice{}.Name():
		return AddDevice{Address: e.Address, Key: e.Key}, nil
	case AssignLicenses{}.Name():
		return AssignLicenses{}, nil
	case ApproveDevice{}.Name():
		return ApproveDevice{Address: e.Address}, nil
	case SetConsoleMode{}.Name():
		return SetConsoleMode{Mode: Mode(e.Mode)}, nil
	case ToggleEcho{}.Name():
		return ToggleEcho{}, nil
	case ToggleControlScope{}.Name():
		return ToggleControlScope{}, nil
	case SubmitCommand{}.Name():
		return SubmitCommand{Text: e.Text}, nil
	case RunQuickCommand{}.Name():
		return RunQuickCommand{Text: e.Text}, nil
	case TriggerAction{}.Name():
		a, ok := echo.ParseAction(e.Action)
		if !ok {
			return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidIntent, e.Action)
		}
		return TriggerAction{Action: a}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownIntent, e.Intent)
}

// IntentNames lists every intent name Decode accepts.
func IntentNames() []string {
	return []string{
		SelectTopic{}.Name(),
		ToggleStep{}.Name(),
		ResetSteps{}.Name(),
		ResetSession{}.Name(),
		AddDevice{}.Name(),
		AssignLicenses{}.Name(),
		ApproveDevice{}.Name(),
		SetConsoleMode{}.Name(),
		ToggleEcho{}.Name(),
		ToggleControlScope{}.Name(),
		SubmitCommand{}.Name(),
		RunQuickCommand{}.Name(),
		TriggerAction{}.Name(),
	}
}
