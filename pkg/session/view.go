package session

import "github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"

// View is a JSON-friendly projection of a State, resolved against the
// lesson catalog.
type View struct {
	Session      string        `json:"session,omitempty"`
	Topic        lessons.Topic `json:"topic"`
	Title        string        `json:"title"`
	Label        string        `json:"label"`
	Steps        []StepView    `json:"steps"`
	Progress     int           `json:"progress"`
	Ready        bool          `json:"ready"`
	Devices      []DeviceView  `json:"devices"`
	Transcript   []string      `json:"transcript"`
	Echo         bool          `json:"echo"`
	Mode         Mode          `json:"mode"`
	RelevantOnly bool          `json:"relevant_only"`
}

// StepView is one checklist entry.
type StepView struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// DeviceView is one row of the device table.
type DeviceView struct {
	Address         string   `json:"address"`
	RegistrationKey string   `json:"registration_key"`
	Licenses        []string `json:"licenses"`
	State           string   `json:"state"`
}

// NewView projects s for rendering.
func NewView(catalog lessons.Catalog, s State) View {
	l, _ := catalog.Lookup(s.Topic)

	v := View{
		Topic:        s.Topic,
		Title:        l.Title,
		Label:        l.Label,
		Steps:        make([]StepView, s.Steps.Len()),
		Progress:     s.Steps.Progress(),
		Ready:        s.Steps.Complete(),
		Devices:      make([]DeviceView, 0, s.Devices.Len()),
		Transcript:   s.Transcript.Lines(),
		Echo:         s.Echo.Enabled,
		Mode:         s.Mode,
		RelevantOnly: s.RelevantOnly,
	}
	if v.Transcript == nil {
		v.Transcript = []string{}
	}

	for i := range v.Steps {
		title := ""
		if i < len(l.Steps) {
			title = l.Steps[i]
		}
		v.Steps[i] = StepView{Title: title, Done: s.Steps.Done(i)}
	}

	for _, rec := range s.Devices.Records() {
		licenses := rec.Licenses
		if licenses == nil {
			licenses = []string{}
		}
		v.Devices = append(v.Devices, DeviceView{
			Address:         rec.Address,
			RegistrationKey: rec.RegistrationKey,
			Licenses:        licenses,
			State:           rec.State.String(),
		})
	}

	return v
}
