// Package mcpserver exposes a practice session as MCP tools so an assistant
// can drive the simulator the same way a learner would.
package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

// Handler runs one tool call. The returned text becomes the tool result.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Tool pairs an MCP tool definition with its handler.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     Handler
}

// Server serves practice tools over MCP.
type Server struct {
	server *mcp.Server
	log    *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for tool-call tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New creates an empty server announcing itself as name/version.
func New(name, version string, opts ...Option) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewPractice creates a server with every practice tool bound to ctrl.
func NewPractice(ctrl *session.Controller, version string, opts ...Option) *Server {
	s := New("sadhguru", version, opts...)
	s.Register(PracticeTools(ctrl)...)
	return s
}

// Register adds tools. A later tool with the same name replaces the earlier.
func (s *Server) Register(tools ...Tool) {
	for _, t := range tools {
		s.server.AddTool(&mcp.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		}, s.wrap(t))
	}
}

// Serve reads requests from in and writes responses to out until ctx is
// cancelled or in is exhausted.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return s.run(ctx, &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	})
}

func (s *Server) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// wrap adapts t to the SDK. Handler failures become tool results flagged
// IsError, so the assistant reads the message instead of a protocol error.
func (s *Server) wrap(t Tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments
		if len(args) == 0 {
			args = json.RawMessage("{}")
		}

		text, err := t.Handler(ctx, args)
		if err != nil {
			s.log.Info("tool call rejected", "tool", t.Name, "error", err)
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}

		s.log.Debug("tool call", "tool", t.Name)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
