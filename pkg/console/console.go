// Package console interprets the mock diagnostic CLI of the practice
// appliance. Interpretation is a pure, total function: every non-empty input
// maps to one Command from a closed set and to a fixed, deterministic
// response. Nothing here talks to a real device.
package console

import (
	"fmt"
	"strings"
)

// Prompt prefixes every echoed command line in the transcript.
const Prompt = "# "

// Command identifies which pattern an input matched.
type Command int

const (
	CommandNone Command = iota // empty or whitespace-only input
	CommandShowVersion
	CommandShowInterfaces
	CommandPing
	CommandClear
	CommandManagerAdd
	CommandHelp
	CommandUnknown
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandShowVersion:
		return "show-version"
	case CommandShowInterfaces:
		return "show-interfaces"
	case CommandPing:
		return "ping"
	case CommandClear:
		return "clear"
	case CommandManagerAdd:
		return "manager-add"
	case CommandHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Result is the effect of interpreting one input.
type Result struct {
	Command Command
	Echo    string   // prompt line; empty for CommandNone and CommandClear
	Output  []string // response lines appended after Echo
	Clear   bool     // truncate the transcript instead of appending
}

// Lines returns the transcript lines to append: the echo line followed by
// the output lines.
func (r Result) Lines() []string {
	if r.Echo == "" {
		return append([]string(nil), r.Output...)
	}
	lines := make([]string, 0, 1+len(r.Output))
	lines = append(lines, r.Echo)
	lines = append(lines, r.Output...)
	return lines
}

const versionBanner = `Cisco Firepower Threat Defense for VMware v7.3.0 (build 69) [mock]
Model                     : Cisco Firepower Threat Defense for VMware (75)
Manager                   : FMC (registration pending)
Licenses                  : Base, Threat, URL Filtering (evaluation)`

const interfaceTable = `Interface            Name         IP-Address       Status
GigabitEthernet0/0   outside      203.0.113.10     up
GigabitEthernet0/1   inside       192.168.1.1      up
Management0/0        management   192.168.1.10     up`

const pingBanner = `Type escape sequence to abort.
Sending 5, 100-byte ICMP Echos to %s, timeout is 2 seconds:
!!!!!
Success rate is 100 percent (5/5), round-trip min/avg/max = 1/2/4 ms`

const managerAddAck = "Manager successfully configured. Awaiting approval in FMC..."

const helpText = `Available commands:
  show version             firmware, model, manager and licenses
  show interfaces          interface addresses and status
  ping <host>              send five ICMP probes
  clear                    clear the console`

const unknownLine = "% Invalid input detected. Type 'help' for available commands."

// QuickCommands are the pre-canned shortcuts offered next to the prompt.
var QuickCommands = []string{
	"show version",
	"show interfaces",
	"ping 192.168.1.1",
	"clear",
}

// ManagerAdd formats the command the graphical add-device action issues
// on the appliance side.
func ManagerAdd(address, key string) string {
	return fmt.Sprintf("configure manager add %s %s", address, key)
}

// Interpret maps raw input to its deterministic response.
func Interpret(raw string) Result {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Result{Command: CommandNone}
	}

	cmd, out := match(text)
	if cmd == CommandClear {
		return Result{Command: CommandClear, Clear: true}
	}

	return Result{
		Command: cmd,
		Echo:    Prompt + text,
		Output:  out,
	}
}

// match resolves trimmed, non-empty text to a Command and its output lines.
func match(text string) (Command, []string) {
	lower := strings.ToLower(text)
	fields := strings.Fields(lower)

	switch {
	case lower == "show version":
		return CommandShowVersion, []string{versionBanner}
	case lower == "show interface" || lower == "show interfaces":
		return CommandShowInterfaces, []string{interfaceTable}
	case strings.HasPrefix(lower, "ping "):
		dest := strings.Fields(text)[1]
		return CommandPing, []string{fmt.Sprintf(pingBanner, dest)}
	case lower == "clear":
		return CommandClear, nil
	case len(fields) == 5 && fields[0] == "configure" && fields[1] == "manager" && fields[2] == "add":
		return CommandManagerAdd, []string{managerAddAck}
	case lower == "help" || lower == "?":
		return CommandHelp, []string{helpText}
	default:
		return CommandUnknown, []string{unknownLine}
	}
}
