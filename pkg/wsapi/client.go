package wsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/session"
)

// Client is a connection to the /session endpoint.
type Client struct {
	conn *websocket.Conn
	view session.View
}

// Dial opens a session on the server at baseURL (http, https, ws or wss) and
// reads the initial view.
func Dial(ctx context.Context, baseURL string) (*Client, error) {
	conn, _, err := websocket.Dial(ctx, wsURL(baseURL, "/session"), nil)
	if err != nil {
		return nil, fmt.Errorf("wsapi: dial: %w", err)
	}

	c := &Client{conn: conn}
	if err := wsjson.Read(ctx, conn, &c.view); err != nil {
		_ = conn.CloseNow()
		return nil, fmt.Errorf("wsapi: initial view: %w", err)
	}
	return c, nil
}

// View returns the last view received.
func (c *Client) View() session.View { return c.view }

// Send submits env and waits for the reply. A rejected frame is returned as
// an error and leaves View unchanged.
func (c *Client) Send(ctx context.Context, env session.Envelope) (session.View, error) {
	if err := wsjson.Write(ctx, c.conn, env); err != nil {
		return session.View{}, fmt.Errorf("wsapi: send: %w", err)
	}

	var raw json.RawMessage
	if err := wsjson.Read(ctx, c.conn, &raw); err != nil {
		return session.View{}, fmt.Errorf("wsapi: receive: %w", err)
	}

	var ef ErrorFrame
	if err := json.Unmarshal(raw, &ef); err == nil && ef.Error != "" {
		return session.View{}, errors.New(ef.Error)
	}

	var v session.View
	if err := json.Unmarshal(raw, &v); err != nil {
		return session.View{}, fmt.Errorf("wsapi: decode view: %w", err)
	}
	c.view = v
	return v, nil
}

// Close closes the connection normally.
func (c *Client) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "")
}

func wsURL(base, path string) string {
	u := strings.TrimSuffix(base, "/") + path

	if strings.HasPrefix(u, "https://") {
		return "wss://" + u[len("https://"):]
	}

	if strings.HasPrefix(u, "http://") {
		return "ws://" + u[len("http://"):]
	}

	return u
}
