package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cmd   Command
		echo  string
	}{
		{name: "show version", input: "show version", cmd: CommandShowVersion, echo: "# show version"},
		{name: "case insensitive", input: "SHOW Version", cmd: CommandShowVersion, echo: "# SHOW Version"},
		{name: "trimmed", input: "  show version \t", cmd: CommandShowVersion, echo: "# show version"},
		{name: "show interface", input: "show interface", cmd: CommandShowInterfaces, echo: "# show interface"},
		{name: "show interfaces", input: "show interfaces", cmd: CommandShowInterfaces, echo: "# show interfaces"},
		{name: "ping", input: "ping 8.8.8.8", cmd: CommandPing, echo: "# ping 8.8.8.8"},
		{name: "ping hostname", input: "ping not-an-ip", cmd: CommandPing, echo: "# ping not-an-ip"},
		{name: "bare ping", input: "ping", cmd: CommandUnknown, echo: "# ping"},
		{name: "manager add", input: "configure manager add 10.0.0.5 KEY1", cmd: CommandManagerAdd, echo: "# configure manager add 10.0.0.5 KEY1"},
		{name: "manager add missing key", input: "configure manager add 10.0.0.5", cmd: CommandUnknown, echo: "# configure manager add 10.0.0.5"},
		{name: "help", input: "help", cmd: CommandHelp, echo: "# help"},
		{name: "question mark", input: "?", cmd: CommandHelp, echo: "# ?"},
		{name: "unknown", input: "show running-config", cmd: CommandUnknown, echo: "# show running-config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Interpret(tt.input)
			assert.Equal(t, tt.cmd, r.Command)
			assert.Equal(t, tt.echo, r.Echo)
			assert.False(t, r.Clear)
			assert.Len(t, r.Output, 1)
		})
	}
}

func TestInterpretEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		r := Interpret(in)
		assert.Equal(t, CommandNone, r.Command)
		assert.Empty(t, r.Echo)
		assert.Empty(t, r.Output)
		assert.False(t, r.Clear)
		assert.Empty(t, r.Lines())
	}
}

func TestInterpretClear(t *testing.T) {
	r := Interpret(" CLEAR ")
	assert.Equal(t, CommandClear, r.Command)
	assert.True(t, r.Clear)
	assert.Empty(t, r.Echo)
	assert.Empty(t, r.Output)
}

func TestInterpretDeterministic(t *testing.T) {
	for _, in := range []string{"show version", "show interfaces", "ping 1.1.1.1", "bogus"} {
		assert.Equal(t, Interpret(in), Interpret(in), in)
	}
}

func TestShowVersionBanner(t *testing.T) {
	r := Interpret("show version")
	require.Len(t, r.Output, 1)
	banner := r.Output[0]
	assert.Contains(t, banner, "7.3.0")
	assert.Contains(t, banner, "Model")
	assert.Contains(t, banner, "Manager")
	assert.Contains(t, banner, "Licenses")
}

func TestShowInterfacesTable(t *testing.T) {
	r := Interpret("show interfaces")
	require.Len(t, r.Output, 1)
	rows := strings.Split(r.Output[0], "\n")
	require.Len(t, rows, 4)
	for _, name := range []string{"outside", "inside", "management"} {
		assert.Contains(t, r.Output[0], name)
	}
	for _, row := range rows[1:] {
		assert.True(t, strings.HasSuffix(row, "up"), row)
	}
}

func TestPingBanner(t *testing.T) {
	r := Interpret("ping  10.1.1.1")
	require.Len(t, r.Output, 1)
	assert.Contains(t, r.Output[0], "Sending 5, 100-byte ICMP Echos to 10.1.1.1")
	assert.Contains(t, r.Output[0], "!!!!!")
	assert.Contains(t, r.Output[0], "(5/5)")
}

func TestResultLines(t *testing.T) {
	r := Interpret("show version")
	lines := r.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "# show version", lines[0])
	assert.Equal(t, r.Output[0], lines[1])

	lines[1] = "mutated"
	assert.NotEqual(t, "mutated", r.Output[0])
}

func TestManagerAdd(t *testing.T) {
	cmd := ManagerAdd("192.168.1.10", "REGKEY123")
	assert.Equal(t, "configure manager add 192.168.1.10 REGKEY123", cmd)

	r := Interpret(cmd)
	assert.Equal(t, CommandManagerAdd, r.Command)
	assert.Contains(t, r.Output[0], "Awaiting approval")
}

func TestQuickCommandsAreRecognized(t *testing.T) {
	for _, qc := range QuickCommands {
		assert.NotEqual(t, CommandUnknown, Interpret(qc).Command, qc)
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "show-version", CommandShowVersion.String())
	assert.Equal(t, "unknown", CommandUnknown.String())
	assert.Equal(t, "none", CommandNone.String())
}
