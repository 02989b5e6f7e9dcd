package session

import (
	"strings"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/devices"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/echo"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/progress"
)

// Mode is the active console surface.
type Mode string

const (
	ModeGUI Mode = "gui"
	ModeCLI Mode = "cli"
)

// ParseMode resolves a mode name case-insensitively.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeGUI:
		return ModeGUI, true
	case ModeCLI:
		return ModeCLI, true
	}
	return "", false
}

// Transcript is the command-line console buffer. It only grows, except when
// the console is cleared.
type Transcript struct {
	lines []string
}

// Append returns a transcript with lines added at the end.
func (t Transcript) Append(lines ...string) Transcript {
	if len(lines) == 0 {
		return t
	}
	next := make([]string, 0, len(t.lines)+len(lines))
	next = append(next, t.lines...)
	next = append(next, lines...)
	return Transcript{lines: next}
}

// Lines returns a copy of the buffer.
func (t Transcript) Lines() []string {
	return append([]string(nil), t.lines...)
}

// Len returns the number of lines.
func (t Transcript) Len() int { return len(t.lines) }

// State is one immutable snapshot of a practice session. Every field is a
// value; reducers build new sub-states instead of mutating shared ones.
type State struct {
	Topic        lessons.Topic
	Steps        progress.Steps
	Devices      devices.Registry
	Transcript   Transcript
	Echo         echo.Coordinator
	Mode         Mode
	RelevantOnly bool
}

// Setup is the fixed input every reducer of one session works against.
type Setup struct {
	Catalog      lessons.Catalog
	InitialTopic lessons.Topic
	Licenses     []string
}

// NewSetup returns a Setup for catalog starting at initial. An initial topic
// missing from the catalog falls back to the catalog's first topic.
func NewSetup(catalog lessons.Catalog, initial lessons.Topic) Setup {
	if _, ok := catalog.Lookup(initial); !ok {
		initial = catalog.First()
	}
	return Setup{
		Catalog:      catalog,
		InitialTopic: initial,
		Licenses:     devices.DefaultLicenses(),
	}
}

// Initial returns the documented starting snapshot: initial topic with no
// steps done, no devices, an empty transcript, echo off, graphical console,
// and only the relevant controls shown.
func (s Setup) Initial() State {
	return State{
		Topic:        s.InitialTopic,
		Steps:        progress.New(s.stepCount(s.InitialTopic)),
		Mode:         ModeGUI,
		RelevantOnly: true,
	}
}

func (s Setup) stepCount(t lessons.Topic) int {
	l, ok := s.Catalog.Lookup(t)
	if !ok {
		return 0
	}
	return len(l.Steps)
}
