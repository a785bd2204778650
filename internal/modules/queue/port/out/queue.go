package out

import (
	"context"

	"civiq/internal/modules/queue/domain"
)

// Store persists queued entries across process restarts. List returns
// entries in enqueue order.
type Store interface {
	Enqueue(ctx context.Context, entry domain.Entry) error
	List(ctx context.Context) ([]domain.Entry, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// Submitter replays one queued entry against the server and returns
// the server-assigned problem id.
type Submitter interface {
	SubmitQueued(ctx context.Context, entry domain.Entry) (string, error)
}

// Scheduler guards and spawns the background drain worker.
type Scheduler interface {
	// Acquire claims the worker slot for the calling process. It
	// returns false when another live worker already holds it.
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
	// Spawn starts a detached drain worker process.
	Spawn(ctx context.Context) error
	// Armed reports whether a live worker currently holds the slot.
	Armed(ctx context.Context) (bool, error)
}
