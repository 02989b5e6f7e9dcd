package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

// ToolPrefix prefixes every practice tool name.
const ToolPrefix = "practice_"

type intentTool struct {
	intent      string
	description string
	schema      string
}

const emptySchema = `{"type":"object","properties":{}}`

var intentTools = []intentTool{
	{
		intent:      "selectTopic",
		description: "Switch the active lesson. Step progress carries over unless the new lesson has a different number of steps.",
		schema:      `{"type":"object","properties":{"topic":{"type":"string","description":"Lesson topic, e.g. onboard, acp, nat, s2s"}},"required":["topic"]}`,
	},
	{
		intent:      "toggleStep",
		description: "Flip one checklist step between done and not done.",
		schema:      `{"type":"object","properties":{"index":{"type":"integer","minimum":0,"description":"Zero-based step index"}},"required":["index"]}`,
	},
	{intent: "resetSteps", description: "Mark every step of the current lesson as not done.", schema: emptySchema},
	{intent: "resetSession", description: "Return the whole session to its initial state.", schema: emptySchema},
	{
		intent:      "addDevice",
		description: "Register an appliance with the manager. Duplicate addresses are ignored.",
		schema:      `{"type":"object","properties":{"address":{"type":"string"},"key":{"type":"string","description":"Registration key"}},"required":["address","key"]}`,
	},
	{intent: "assignLicenses", description: "Assign the Threat and URL licenses to every device that is not yet approved.", schema: emptySchema},
	{
		intent:      "approveDevice",
		description: "Approve a registered device. Approved devices are frozen.",
		schema:      `{"type":"object","properties":{"address":{"type":"string"}},"required":["address"]}`,
	},
	{
		intent:      "setConsoleMode",
		description: "Switch between the graphical console and the command line.",
		schema:      `{"type":"object","properties":{"mode":{"type":"string","enum":["gui","cli"]}},"required":["mode"]}`,
	},
	{intent: "toggleEcho", description: "Turn echo of graphical actions into the CLI transcript on or off.", schema: emptySchema},
	{intent: "toggleControlScope", description: "Switch between showing only the lesson's relevant controls and all controls.", schema: emptySchema},
	{
		intent:      "submitCommand",
		description: "Type a command at the appliance CLI prompt.",
		schema:      `{"type":"object","properties":{"text":{"type":"string"}},"required":["text"]}`,
	},
	{
		intent:      "runQuickCommand",
		description: "Run one of the CLI quick commands.",
		schema:      `{"type":"object","properties":{"text":{"type":"string","enum":["show version","show interfaces","ping 192.168.1.1","clear"]}},"required":["text"]}`,
	},
	{
		intent:      "triggerAction",
		description: "Press a graphical action that has a CLI equivalent.",
		schema:      `{"type":"object","properties":{"action":{"type":"string","enum":["add-nat-rule","create-vpn","apply-policy"]}},"required":["action"]}`,
	},
}

// ToolName returns the MCP tool name for an intent name, e.g.
// practice_add_device for addDevice.
func ToolName(intent string) string {
	var b strings.Builder
	b.WriteString(ToolPrefix)
	for _, r := range intent {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PracticeTools returns one tool per intent plus practice_snapshot, all bound
// to c. Every tool replies with the session view as JSON.
func PracticeTools(c *session.Controller) []Tool {
	tools := make([]Tool, 0, len(intentTools)+1)
	for _, it := range intentTools {
		tools = append(tools, Tool{
			Name:        ToolName(it.intent),
			Description: it.description,
			InputSchema: json.RawMessage(it.schema),
			Handler:     intentHandler(c, it.intent),
		})
	}

	tools = append(tools, Tool{
		Name:        ToolPrefix + "snapshot",
		Description: "Return the current session view: lesson, checklist, devices, transcript and toggles.",
		InputSchema: json.RawMessage(emptySchema),
		Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
			return viewJSON(c.View())
		},
	})
	return tools
}

func intentHandler(c *session.Controller, intent string) Handler {
	return func(_ context.Context, input json.RawMessage) (string, error) {
		var env session.Envelope
		if err := json.Unmarshal(input, &env); err != nil {
			return "", fmt.Errorf("invalid input: %w", err)
		}
		env.Intent = intent

		in, err := env.Decode()
		if err != nil {
			return "", err
		}
		state, err := c.Apply(in)
		if err != nil {
			return "", err
		}
		return viewJSON(c.ViewOf(state))
	}
}

func viewJSON(v session.View) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode view: %w", err)
	}
	return string(data), nil
}
