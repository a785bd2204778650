package out

import (
	"context"

	"civiq/internal/modules/realtime/domain"
)

// Channel is a bidirectional realtime transport.
type Channel interface {
	Connect(ctx context.Context) error
	Close() error
	Connected() bool
	Send(ctx context.Context, envelope domain.Envelope) error
	// Receive blocks until the next inbound envelope. It returns
	// ErrChannelClosed once the transport is gone.
	Receive(ctx context.Context) (domain.Envelope, error)
}
