// Package engine is the composition root of the practice simulator. It turns
// configuration into a lesson catalog, a logger and a registry of isolated
// practice sessions, and publishes every handled intent on an EventBus.
// Frontends (terminal UI, websocket, MCP) talk to Engine and
// session.Controller and never assemble the lower-level packages themselves.
package engine
