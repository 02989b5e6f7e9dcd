package wsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/engine"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

const shutdownTimeout = 5 * time.Second

// ErrorFrame is sent in place of a view when a client frame is rejected.
type ErrorFrame struct {
	Error string `json:"error"`
}

// Health is the /healthz response body.
type Health struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// Server exposes an engine over HTTP and websockets.
type Server struct {
	eng     *engine.Engine
	log     *slog.Logger
	origins []string
	mux     *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithOriginPatterns allows cross-origin browser clients whose origin host
// matches one of patterns.
func WithOriginPatterns(patterns ...string) Option {
	return func(s *Server) { s.origins = patterns }
}

// New creates a Server for eng.
func New(eng *engine.Engine, opts ...Option) *Server {
	s := &Server{
		eng: eng,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		mux: http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("GET /session", s.handleSession)
	s.mux.HandleFunc("GET /watch", s.handleWatch)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s
}

// Handler returns the HTTP handler serving every endpoint.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("wsapi: listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("websocket server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("wsapi: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("wsapi: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("wsapi: serve: %w", err)
	}
	return nil
}

func (s *Server) accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: s.origins})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	ctrl, err := s.eng.NewSession()
	if err != nil {
		s.log.Warn("session rejected", "error", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	defer s.eng.RemoveSession(ctrl.ID())

	conn, err := s.accept(w, r)
	if err != nil {
		s.log.Warn("websocket accept failed", "session", ctrl.ID(), "error", err)
		return
	}
	defer func() { _ = conn.CloseNow() }()

	ctx := r.Context()
	if err := wsjson.Write(ctx, conn, ctrl.View()); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				s.log.Debug("session connection ended", "session", ctrl.ID(), "error", err)
			}
			return
		}

		reply := s.handleFrame(ctrl, data)
		if err := wsjson.Write(ctx, conn, reply); err != nil {
			s.log.Debug("session write failed", "session", ctrl.ID(), "error", err)
			return
		}
	}
}

// handleFrame applies one client frame and returns the reply to send.
func (s *Server) handleFrame(ctrl *session.Controller, data []byte) any {
	var env session.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ErrorFrame{Error: fmt.Sprintf("invalid frame: %v", err)}
	}
	in, err := env.Decode()
	if err != nil {
		return ErrorFrame{Error: err.Error()}
	}
	state, err := ctrl.Apply(in)
	if err != nil {
		return ErrorFrame{Error: err.Error()}
	}
	return ctrl.ViewOf(state)
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("session")

	// Subscribe before the handshake completes so a client that has dialed
	// sees every later event.
	sub := s.eng.Events().Subscribe(64)
	defer s.eng.Events().Unsubscribe(sub)

	conn, err := s.accept(w, r)
	if err != nil {
		s.log.Warn("websocket accept failed", "error", err)
		return
	}
	defer func() { _ = conn.CloseNow() }()

	// Watchers never send; CloseRead cancels ctx when the peer goes away.
	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			if filter != "" && ev.SessionID != filter {
				continue
			}
			if err := wsjson.Write(ctx, conn, ev); err != nil {
				return
			}
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Health{Status: "ok", Sessions: len(s.eng.Sessions())})
}
