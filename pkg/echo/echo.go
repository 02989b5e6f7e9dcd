// Package echo decides whether graphical-console actions show up in the
// command-line transcript, and supplies the mock configuration each action
// would have produced on the appliance.
package echo

import "strings"

// Action is a graphical-console control that has a CLI equivalent.
type Action int

const (
	ActionAddNATRule Action = iota
	ActionCreateVPN
	ActionApplyPolicy
)

// Actions lists every Action in display order.
var Actions = []Action{ActionAddNATRule, ActionCreateVPN, ActionApplyPolicy}

func (a Action) String() string {
	switch a {
	case ActionAddNATRule:
		return "add-nat-rule"
	case ActionCreateVPN:
		return "create-vpn"
	case ActionApplyPolicy:
		return "apply-policy"
	default:
		return "unknown"
	}
}

// Label is the button caption for the action.
func (a Action) Label() string {
	switch a {
	case ActionAddNATRule:
		return "Add NAT Rule"
	case ActionCreateVPN:
		return "Create VPN"
	case ActionApplyPolicy:
		return "Apply Policy"
	default:
		return "Unknown"
	}
}

// ParseAction resolves an action by its String form.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Actions {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}

var sequences = map[Action][]string{
	ActionAddNATRule: {
		"(config)# object network INSIDE-NET",
		"(config-network-object)# subnet 192.168.1.0 255.255.255.0",
		"(config-network-object)# nat (inside,outside) dynamic interface",
	},
	ActionCreateVPN: {
		"(config)# crypto ikev2 policy 10",
		"(config-ikev2-policy)# encryption aes-256",
		"(config-ikev2-policy)# integrity sha256",
		"(config-ikev2-policy)# group 14",
		"(config)# crypto ikev2 enable outside",
		"(config)# tunnel-group 198.51.100.2 type ipsec-l2l",
	},
	ActionApplyPolicy: {
		"(config)# access-list CSM_FW_ACL_ remark rule-id 268434432: ACCESS POLICY: Default",
		"(config)# access-list CSM_FW_ACL_ advanced permit tcp any any eq https rule-id 268434433",
		"(config)# access-group CSM_FW_ACL_ global",
	},
}

// Sequence returns a copy of the mock configuration lines for a.
func Sequence(a Action) []string {
	return append([]string(nil), sequences[a]...)
}

// Coordinator gates echo. The zero value has echo disabled.
type Coordinator struct {
	Enabled bool
}

// Toggle flips the enabled flag.
func (c Coordinator) Toggle() Coordinator {
	return Coordinator{Enabled: !c.Enabled}
}

// Emit returns the lines a should inject into the transcript: nothing while
// echo is disabled, the action's fixed sequence otherwise.
func (c Coordinator) Emit(a Action) []string {
	if !c.Enabled {
		return nil
	}
	return Sequence(a)
}
