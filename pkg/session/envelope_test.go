package session

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/echo"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
)

func TestEnvelopeDecode(t *testing.T) {
	tests := []struct {
		env  Envelope
		want Intent
	}{
		{Envelope{Intent: "selectTopic", Topic: "nat"}, SelectTopic{Topic: lessons.TopicNAT}},
		{Envelope{Intent: "toggleStep", Index: 2}, ToggleStep{Index: 2}},
		{Envelope{Intent: "resetSteps"}, ResetSteps{}},
		{Envelope{Intent: "resetSession"}, ResetSession{}},
		{Envelope{Intent: "addDevice", Address: "a", Key: "k"}, AddDevice{Address: "a", Key: "k"}},
		{Envelope{Intent: "assignLicenses"}, AssignLicenses{}},
		{Envelope{Intent: "approveDevice", Address: "a"}, ApproveDevice{Address: "a"}},
		{Envelope{Intent: "setConsoleMode", Mode: "cli"}, SetConsoleMode{Mode: ModeCLI}},
		{Envelope{Intent: "toggleEcho"}, ToggleEcho{}},
		{Envelope{Intent: "toggleControlScope"}, ToggleControlScope{}},
		{Envelope{Intent: "submitCommand", Text: "show version"}, SubmitCommand{Text: "show version"}},
		{Envelope{Intent: "runQuickCommand", Text: "clear"}, RunQuickCommand{Text: "clear"}},
		{Envelope{Intent: "triggerAction", Action: "create-vpn"}, TriggerAction{Action: echo.ActionCreateVPN}},
	}

	for _, tt := range tests {
		t.Run(tt.env.Intent, func(t *testing.T) {
			got, err := tt.env.Decode()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvelopeDecodeCoversAllNames(t *testing.T) {
	for _, name := range IntentNames() {
		env := Envelope{Intent: name, Action: "add-nat-rule"}
		in, err := env.Decode()
		require.NoError(t, err, name)
		assert.Equal(t, name, in.Name())
	}
}

func TestEnvelopeDecodeErrors(t *testing.T) {
	_, err := Envelope{Intent: "reboot"}.Decode()
	assert.True(t, errors.Is(err, ErrUnknownIntent))

	_, err = Envelope{Intent: "triggerAction", Action: "nope"}.Decode()
	assert.True(t, errors.Is(err, ErrInvalidIntent))
}

func TestEnvelopeJSON(t *testing.T) {
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"intent":"addDevice","address":"10.0.0.1","key":"K1"}`), &env))

	in, err := env.Decode()
	require.NoError(t, err)
	assert.Equal(t, AddDevice{Address: "10.0.0.1", Key: "K1"}, in)
}
