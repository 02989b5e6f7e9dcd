// Package scenario replays scripted intent sequences against a fresh session
// and checks the resulting snapshot. Scripts are YAML documents; a file may
// hold several, separated by "---".
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

// Script is one named scenario.
type Script struct {
	Name    string             `yaml:"name"`
	Topic   string             `yaml:"topic,omitempty"` // Empty starts on the catalog's first topic.
	Intents []session.Envelope `yaml:"intents"`
	Expect  Expectation        `yaml:"expect"`
}

// Expectation lists the checks applied to the final snapshot. Unset fields
// are not checked.
type Expectation struct {
	Topic              string              `yaml:"topic,omitempty"`
	Transcript         []string            `yaml:"transcript,omitempty"`
	TranscriptLen      *int                `yaml:"transcript_len,omitempty"`
	TranscriptContains []string            `yaml:"transcript_contains,omitempty"`
	Devices            []DeviceExpectation `yaml:"devices,omitempty"`
	DeviceCount        *int                `yaml:"device_count,omitempty"`
	Progress           *int                `yaml:"progress,omitempty"`
	Ready              *bool               `yaml:"ready,omitempty"`
	Echo               *bool               `yaml:"echo,omitempty"`
	Mode               string              `yaml:"mode,omitempty"`
}

// DeviceExpectation checks one device row by address.
type DeviceExpectation struct {
	Address  string   `yaml:"address"`
	State    string   `yaml:"state,omitempty"`
	Licenses []string `yaml:"licenses,omitempty"`
}

// Result is the outcome of running one script.
type Result struct {
	Name     string
	Failures []string
	View     session.View
}

// Passed reports whether every expectation held.
func (r Result) Passed() bool { return len(r.Failures) == 0 }

// Parse decodes every script in data.
func Parse(data []byte) ([]Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var scripts []Script
	for {
		var s Script
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scenario: parse: %w", err)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("scenario: parse: script %d: name is required", len(scripts)+1)
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

// LoadFile reads every script in the file at path.
func LoadFile(path string) ([]Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a user-selected script
	if err != nil {
		return nil, fmt.Errorf("scenario: load: %w", err)
	}
	return Parse(data)
}

// Run replays s against a new session over catalog. It returns an error when
// the script itself is malformed (unknown topic, undecodable intent, step
// index out of range); failed expectations are reported in the Result.
func Run(catalog lessons.Catalog, s Script) (Result, error) {
	topic := lessons.Topic(s.Topic)
	if topic != "" {
		if _, err := catalog.Require(topic); err != nil {
			return Result{}, fmt.Errorf("scenario: %s: %w", s.Name, err)
		}
	}

	c := session.NewController(s.Name, session.NewSetup(catalog, topic))
	for i, env := range s.Intents {
		in, err := env.Decode()
		if err != nil {
			return Result{}, fmt.Errorf("scenario: %s: intent %d: %w", s.Name, i+1, err)
		}
		if _, err := c.Apply(in); err != nil {
			return Result{}, fmt.Errorf("scenario: %s: intent %d: %w", s.Name, i+1, err)
		}
	}

	v := c.View()
	return Result{Name: s.Name, Failures: s.Expect.check(v), View: v}, nil
}

func (e Expectation) check(v session.View) []string {
	var failures []string
	failf := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	if e.Topic != "" && e.Topic != string(v.Topic) {
		failf("topic: want %q, got %q", e.Topic, v.Topic)
	}
	if e.Mode != "" && e.Mode != string(v.Mode) {
		failf("mode: want %q, got %q", e.Mode, v.Mode)
	}
	if e.Echo != nil && *e.Echo != v.Echo {
		failf("echo: want %t, got %t", *e.Echo, v.Echo)
	}
	if e.Progress != nil && *e.Progress != v.Progress {
		failf("progress: want %d, got %d", *e.Progress, v.Progress)
	}
	if e.Ready != nil && *e.Ready != v.Ready {
		failf("ready: want %t, got %t", *e.Ready, v.Ready)
	}

	if e.TranscriptLen != nil && *e.TranscriptLen != len(v.Transcript) {
		failf("transcript: want %d lines, got %d", *e.TranscriptLen, len(v.Transcript))
	}
	if e.Transcript != nil && !slices.Equal(e.Transcript, v.Transcript) {
		failf("transcript mismatch:\n%s", Diff(e.Transcript, v.Transcript))
	}
	for _, want := range e.TranscriptContains {
		if !transcriptContains(v.Transcript, want) {
			failf("transcript: missing %q", want)
		}
	}

	if e.DeviceCount != nil && *e.DeviceCount != len(v.Devices) {
		failf("devices: want %d, got %d", *e.DeviceCount, len(v.Devices))
	}
	for _, want := range e.Devices {
		got, ok := findDevice(v.Devices, want.Address)
		if !ok {
			failf("device %s: not found", want.Address)
			continue
		}
		if want.State != "" && want.State != got.State {
			failf("device %s: want state %s, got %s", want.Address, want.State, got.State)
		}
		if want.Licenses != nil && !slices.Equal(want.Licenses, got.Licenses) {
			failf("device %s: want licenses %v, got %v", want.Address, want.Licenses, got.Licenses)
		}
	}

	return failures
}

// Diff renders a unified diff between two transcripts. Multi-line entries
// are split so the diff is line-accurate.
func Diff(want, got []string) string {
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(flatten(want)),
		B:        difflib.SplitLines(flatten(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	}
	out, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return err.Error()
	}
	return out
}

func flatten(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func transcriptContains(lines []string, want string) bool {
	for _, l := range lines {
		if strings.Contains(l, want) {
			return true
		}
	}
	return false
}

func findDevice(rows []session.DeviceView, address string) (session.DeviceView, bool) {
	for _, r := range rows {
		if r.Address == address {
			return r, true
		}
	}
	return session.DeviceView{}, false
}
