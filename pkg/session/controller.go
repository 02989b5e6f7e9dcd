package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// ErrInvalidIntent is returned by Apply for intents that are well-typed but
// do not fit the current state, such as a step index outside the checklist.
var ErrInvalidIntent = errors.New("session: invalid intent")

// Observer is notified after every handled intent with the resulting
// snapshot. It is called while the controller is locked and must not call
// back into the controller.
type Observer func(id string, in Intent, snap State)

// Controller drives one isolated session. Intents are handled one at a time
// in arrival order.
type Controller struct {
	id       string
	setup    Setup
	log      *slog.Logger
	observer Observer

	mu    sync.Mutex
	state State
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for intent tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithObserver registers fn to receive every handled intent.
func WithObserver(fn Observer) Option {
	return func(c *Controller) { c.observer = fn }
}

// NewController creates a session at setup's initial state.
func NewController(id string, setup Setup, opts ...Option) *Controller {
	c := &Controller{
		id:    id,
		setup: setup,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		state: setup.Initial(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the session identifier.
func (c *Controller) ID() string { return c.id }

// Setup returns the fixed session inputs.
func (c *Controller) Setup() Setup { return c.setup }

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the render-ready projection of the current state.
func (c *Controller) View() View {
	return c.ViewOf(c.Snapshot())
}

// ViewOf projects s, a snapshot returned by this controller, tagged with the
// session ID.
func (c *Controller) ViewOf(s State) View {
	v := NewView(c.setup.Catalog, s)
	v.Session = c.id
	return v
}

// Dispatch handles in and returns the new snapshot. Callers must only pass
// step indices taken from the current checklist; use Apply for input that
// comes from outside the process.
func (c *Controller) Dispatch(in Intent) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked(in)
}

// Apply validates in against the current state before dispatching it.
func (c *Controller) Apply(in Intent) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ts, ok := in.(ToggleStep); ok {
		if n := c.state.Steps.Len(); ts.Index < 0 || ts.Index >= n {
			return c.state, fmt.Errorf("%w: step %d out of range [0,%d)", ErrInvalidIntent, ts.Index, n)
		}
	}
	return c.dispatchLocked(in), nil
}

func (c *Controller) dispatchLocked(in Intent) State {
	c.state = Reduce(c.setup, c.state, in)

	c.log.Debug("intent handled",
		"session", c.id,
		"intent", in.Name(),
		"transcript", c.state.Transcript.Len(),
		"devices", c.state.Devices.Len(),
		"progress", c.state.Steps.Progress(),
	)

	if c.observer != nil {
		c.observer(c.id, in, c.state)
	}
	return c.state
}
