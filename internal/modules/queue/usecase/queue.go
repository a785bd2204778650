package usecase

import (
	"context"
	"fmt"
	"time"

	"civiq/internal/modules/queue/domain"
	"civiq/internal/modules/queue/dto"
	queuein "civiq/internal/modules/queue/port/in"
	queueout "civiq/internal/modules/queue/port/out"
	"civiq/internal/modules/queue/service"
	"civiq/internal/platform/clock"
	apperrors "civiq/internal/platform/errors"
)

// workerBackoff spaces the background worker's drain passes. The first
// pass runs right away and almost always fails, since the worker is
// spawned the moment a submission hits a connectivity error; the later
// passes are the ones that catch connectivity coming back.
var workerBackoff = []time.Duration{0, 15 * time.Second, time.Minute, 4 * time.Minute}

type Interactor struct {
	svc       *service.SyncService
	scheduler queueout.Scheduler
	clock     clock.Clock
}

func NewInteractor(svc *service.SyncService, scheduler queueout.Scheduler, clk clock.Clock) queuein.Usecase {
	return &Interactor{svc: svc, scheduler: scheduler, clock: clk}
}

func (i *Interactor) Enqueue(ctx context.Context, input dto.EnqueueInput) (string, error) {
	entry, err := i.svc.Enqueue(ctx, domain.Entry{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		PhotoName:   input.PhotoName,
		Photo:       input.Photo,
		Lat:         input.Lat,
		Lng:         input.Lng,
	})
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.EntryOutput, error) {
	entries, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.EntryOutput{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			Category:    entry.Category,
			PhotoName:   entry.PhotoName,
			Status:      entry.Status,
			Lat:         entry.Lat,
			Lng:         entry.Lng,
			EnqueuedAt:  entry.EnqueuedAt,
		})
	}
	return out, nil
}

// Sync runs one drain pass in the calling process. The scheduler slot
// guards against a concurrent background worker doing the same work.
func (i *Interactor) Sync(ctx context.Context) (dto.SyncOutput, error) {
	acquired, err := i.scheduler.Acquire(ctx)
	if err != nil {
		return dto.SyncOutput{}, fmt.Errorf("acquire sync slot: %w", err)
	}
	if !acquired {
		return dto.SyncOutput{}, apperrors.ErrSyncInProgress
	}
	defer func() { _ = i.scheduler.Release(ctx) }()

	result, err := i.svc.Drain(ctx)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	return dto.SyncOutput{Attempted: result.Attempted, Synced: result.Synced, Remaining: result.Remaining}, nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

// RunWorker is the background worker's entry point. It holds the
// scheduler slot across a bounded series of drain passes, stopping as
// soon as a pass syncs an entry or empties the queue.
func (i *Interactor) RunWorker(ctx context.Context) (dto.SyncOutput, error) {
	acquired, err := i.scheduler.Acquire(ctx)
	if err != nil {
		return dto.SyncOutput{}, fmt.Errorf("acquire sync slot: %w", err)
	}
	if !acquired {
		return dto.SyncOutput{}, apperrors.ErrSyncInProgress
	}
	defer func() { _ = i.scheduler.Release(ctx) }()

	var out dto.SyncOutput
	for _, delay := range workerBackoff {
		if delay > 0 {
			if err := i.clock.Sleep(ctx, delay); err != nil {
				return out, err
			}
		}
		result, err := i.svc.Drain(ctx)
		if err != nil {
			return out, err
		}
		out = dto.SyncOutput{Attempted: result.Attempted, Synced: result.Synced, Remaining: result.Remaining}
		if out.Synced > 0 || out.Remaining == 0 {
			return out, nil
		}
	}
	return out, nil
}

// Arm starts a detached drain worker unless one is already live or the
// queue is empty.
func (i *Interactor) Arm(ctx context.Context) (bool, error) {
	pending, err := i.svc.Pending(ctx)
	if err != nil {
		return false, err
	}
	if !pending {
		return false, nil
	}
	armed, err := i.scheduler.Armed(ctx)
	if err != nil {
		return false, err
	}
	if armed {
		return false, nil
	}
	if err := i.scheduler.Spawn(ctx); err != nil {
		return false, fmt.Errorf("spawn sync worker: %w", err)
	}
	return true, nil
}
