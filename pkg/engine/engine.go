package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

// ErrSessionLimit is returned by NewSession when server.max_sessions
// sessions are already open.
var ErrSessionLimit = errors.New("engine: session limit reached")

// Engine is the composition root that assembles the catalog, logger and
// session registry from configuration and exposes them through a
// frontend-agnostic API.
type Engine struct {
	cfg     Config
	catalog lessons.Catalog
	setup   session.Setup
	log     *slog.Logger
	events  *EventBus

	mu       sync.Mutex
	sessions map[string]*session.Controller
	nextID   int
}

// New creates an Engine from the given configuration. It validates the
// config and loads the lesson catalog. A nil logger discards output.
func New(cfg Config, log *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	catalog := lessons.Default()
	if cfg.Lessons.File != "" {
		c, err := lessons.LoadFile(cfg.Lessons.File)
		if err != nil {
			return nil, fmt.Errorf("engine: lessons: %w", err)
		}
		catalog = c
	}

	initial := lessons.Topic(cfg.Lessons.InitialTopic)
	if initial != "" {
		if _, err := catalog.Require(initial); err != nil {
			return nil, fmt.Errorf("engine: config: lessons.initial_topic: %w", err)
		}
	}

	return &Engine{
		cfg:      cfg,
		catalog:  catalog,
		setup:    session.NewSetup(catalog, initial),
		log:      log,
		events:   NewEventBus(),
		sessions: make(map[string]*session.Controller),
	}, nil
}

// Config returns the configuration the engine was built from.
func (e *Engine) Config() Config { return e.cfg }

// Catalog returns the lesson catalog.
func (e *Engine) Catalog() lessons.Catalog { return e.catalog }

// Events returns the engine's event bus.
func (e *Engine) Events() *EventBus { return e.events }

// NewSession opens an isolated session at the initial state.
func (e *Engine) NewSession() (*session.Controller, error) {
	e.mu.Lock()
	if limit := e.cfg.Server.MaxSessions; limit > 0 && len(e.sessions) >= limit {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w (%d)", ErrSessionLimit, limit)
	}
	e.nextID++
	id := fmt.Sprintf("session-%d", e.nextID)

	c := session.NewController(id, e.setup,
		session.WithLogger(e.log),
		session.WithObserver(e.publishIntent),
	)
	e.sessions[id] = c
	e.mu.Unlock()

	e.log.Info("session started", "session", id)
	e.events.Publish(Event{
		Kind:      EventSessionStarted,
		SessionID: id,
		Timestamp: time.Now(),
		Snapshot:  c.Snapshot(),
	})

	return c, nil
}

// Session returns an open session by ID.
func (e *Engine) Session(id string) (*session.Controller, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.sessions[id]
	return c, ok
}

// Sessions returns the IDs of all open sessions in sorted order.
func (e *Engine) Sessions() []string {
	e.mu.Lock()
	ids := make([]string, 0, len(e.sessions))
	for id := range e.sessions {
		ids = append(ids, id)
	}
	e.mu.Unlock()

	slices.Sort(ids)
	return ids
}

// RemoveSession closes the session with the given ID. It reports whether the
// session existed.
func (e *Engine) RemoveSession(id string) bool {
	e.mu.Lock()
	_, ok := e.sessions[id]
	delete(e.sessions, id)
	e.mu.Unlock()

	if ok {
		e.log.Info("session closed", "session", id)
		e.events.Publish(Event{
			Kind:      EventSessionClosed,
			SessionID: id,
			Timestamp: time.Now(),
		})
	}
	return ok
}

// Close closes every open session.
func (e *Engine) Close() error {
	for _, id := range e.Sessions() {
		e.RemoveSession(id)
	}
	return nil
}

func (e *Engine) publishIntent(id string, in session.Intent, snap session.State) {
	e.events.Publish(Event{
		Kind:      EventIntentHandled,
		SessionID: id,
		Intent:    in.Name(),
		Timestamp: time.Now(),
		Snapshot:  snap,
	})
}
