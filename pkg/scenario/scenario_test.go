package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

func TestBuiltinScriptsPass(t *testing.T) {
	scripts, err := Builtin()
	require.NoError(t, err)
	require.NotEmpty(t, scripts)

	catalog := lessons.Default()
	for _, s := range scripts {
		t.Run(s.Name, func(t *testing.T) {
			res, err := Run(catalog, s)
			require.NoError(t, err)
			assert.True(t, res.Passed(), "failures: %v", res.Failures)
		})
	}
}

func TestParseMultipleDocuments(t *testing.T) {
	data := []byte(`
name: one
intents:
  - {intent: toggleEcho}
---
name: two
topic: nat
intents: []
`)
	scripts, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, scripts, 2)
	assert.Equal(t, "one", scripts[0].Name)
	assert.Equal(t, []session.Envelope{{Intent: "toggleEcho"}}, scripts[0].Intents)
	assert.Equal(t, "nat", scripts[1].Topic)
}

func TestParseRequiresName(t *testing.T) {
	_, err := Parse([]byte("intents: []\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\n"), 0o600))

	scripts, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, scripts, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunReportsFailures(t *testing.T) {
	two := 2
	s := Script{
		Name: "wrong",
		Intents: []session.Envelope{
			{Intent: "submitCommand", Text: "show version"},
			{Intent: "addDevice", Address: "10.0.0.1", Key: "K"},
		},
		Expect: Expectation{
			Transcript:  []string{"# show interfaces"},
			DeviceCount: &two,
			Devices:     []DeviceExpectation{{Address: "10.0.0.1", State: "Approved"}, {Address: "10.0.0.9"}},
			Mode:        "cli",
		},
	}

	res, err := Run(lessons.Default(), s)
	require.NoError(t, err)
	assert.False(t, res.Passed())
	require.Len(t, res.Failures, 5)
	assert.Contains(t, res.Failures[0], `mode: want "cli"`)
	assert.Contains(t, res.Failures[1], "-# show interfaces")
	assert.Contains(t, res.Failures[1], "+# show version")
	assert.Contains(t, res.Failures[2], "devices: want 2, got 1")
	assert.Contains(t, res.Failures[3], "want state Approved, got Pending")
	assert.Contains(t, res.Failures[4], "10.0.0.9: not found")
}

func TestRunMalformedScripts(t *testing.T) {
	tests := []struct {
		name   string
		script Script
		target error
	}{
		{
			name:   "unknown topic",
			script: Script{Name: "x", Topic: "bgp"},
			target: lessons.ErrUnknownTopic,
		},
		{
			name:   "unknown intent",
			script: Script{Name: "x", Intents: []session.Envelope{{Intent: "reboot"}}},
			target: session.ErrUnknownIntent,
		},
		{
			name:   "step out of range",
			script: Script{Name: "x", Intents: []session.Envelope{{Intent: "toggleStep", Index: 7}}},
			target: session.ErrInvalidIntent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(lessons.Default(), tt.script)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestDiff(t *testing.T) {
	d := Diff([]string{"a", "b\nc"}, []string{"a", "b\nd"})
	assert.Contains(t, d, "--- want")
	assert.Contains(t, d, "+++ got")
	assert.Contains(t, d, "-c")
	assert.Contains(t, d, "+d")

	assert.Empty(t, Diff([]string{"same"}, []string{"same"}))
}
