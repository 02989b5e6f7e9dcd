// Package wsapi serves practice sessions over websockets.
//
// Endpoints:
//
//	GET /session  one isolated session per connection; the client sends
//	              session.Envelope frames and receives session.View frames
//	GET /watch    stream of engine events, optionally filtered by ?session=
//	GET /healthz  liveness and open session count
//
// Every frame is a JSON text message. A frame the server cannot act on is
// answered with {"error": "..."} and the connection stays open.
package wsapi
