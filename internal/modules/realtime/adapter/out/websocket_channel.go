package out

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"civiq/internal/modules/realtime/domain"
	realtimeout "civiq/internal/modules/realtime/port/out"
	apperrors "civiq/internal/platform/errors"
)

// WebsocketChannel speaks JSON envelopes over a websocket. The session
// token rides along as a bearer header on the dial.
type WebsocketChannel struct {
	url    string
	tokens TokenSource

	mu   sync.Mutex
	conn *websocket.Conn
}

type TokenSource interface {
	Token() string
}

func NewWebsocketChannel(url string, tokens TokenSource) realtimeout.Channel {
	return &WebsocketChannel{url: url, tokens: tokens}
}

func (c *WebsocketChannel) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return nil
	}
	header := map[string][]string{}
	if token := c.tokens.Token(); token != "" {
		header["Authorization"] = []string{"Bearer " + token}
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, header)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrConnectivity, err)
	}
	c.conn = conn
	return nil
}

func (c *WebsocketChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	if err != nil {
		return fmt.Errorf("close websocket: %w", err)
	}
	return nil
}

func (c *WebsocketChannel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *WebsocketChannel) Send(_ context.Context, envelope domain.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return apperrors.ErrChannelClosed
	}
	if err := c.conn.WriteJSON(envelope); err != nil {
		return fmt.Errorf("send envelope: %w", err)
	}
	return nil
}

func (c *WebsocketChannel) Receive(ctx context.Context) (domain.Envelope, error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return domain.Envelope{}, apperrors.ErrChannelClosed
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}
	envelope := domain.Envelope{}
	if err := conn.ReadJSON(&envelope); err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %v", apperrors.ErrChannelClosed, err)
	}
	return envelope, nil
}
