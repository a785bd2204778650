package in

import (
	"context"

	"civiq/internal/modules/realtime/dto"
)

// Notifier is the advisory outbound side of the realtime channel.
// Emissions are fire-and-forget: failures are logged, never returned,
// because no workflow outcome may depend on them.
type Notifier interface {
	EmitProblemUpdate(ctx context.Context, problemID, status string)
}

type Usecase interface {
	Notifier

	Connect(ctx context.Context) error
	Disconnect() error
	JoinArea(ctx context.Context, input dto.JoinAreaInput) error
	// Watch delivers inbound events until ctx is cancelled or the
	// channel drops. The returned channel is closed on either.
	Watch(ctx context.Context) (<-chan dto.EventOutput, error)
}
