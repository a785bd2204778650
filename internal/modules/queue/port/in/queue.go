package in

import (
	"context"

	"civiq/internal/modules/queue/dto"
)

type Usecase interface {
	// Enqueue durably stores a report draft for later submission and
	// returns its local identifier.
	Enqueue(ctx context.Context, input dto.EnqueueInput) (string, error)
	List(ctx context.Context) ([]dto.EntryOutput, error)
	// Sync drains the queue in enqueue order. At most one pass runs at
	// a time; a second caller gets ErrSyncInProgress.
	Sync(ctx context.Context) (dto.SyncOutput, error)
	Clear(ctx context.Context) error
	// Arm schedules a background drain pass. It reports whether a new
	// worker was actually started.
	Arm(ctx context.Context) (bool, error)
	// RunWorker drains the queue with bounded retries, waiting between
	// passes so entries queued during an outage go out once
	// connectivity returns.
	RunWorker(ctx context.Context) (dto.SyncOutput, error)
}
