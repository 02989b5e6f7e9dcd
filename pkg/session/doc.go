// Package session is the practice session engine. It owns the session State
// and turns user intents into new immutable snapshots by routing each intent
// to the sub-component that owns the affected data (console, devices,
// progress, echo). Sub-components never call each other; Reduce is the only
// place their results are merged.
//
// Reduce is pure. Controller wraps it for a single live session, serialising
// Dispatch calls and reporting each handled intent to an optional observer.
package session
