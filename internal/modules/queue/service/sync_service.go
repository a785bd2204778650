package service

import (
	"context"
	"fmt"
	"sync"

	"civiq/internal/modules/queue/domain"
	queueout "civiq/internal/modules/queue/port/out"
	"civiq/internal/platform/clock"
	apperrors "civiq/internal/platform/errors"
	"civiq/internal/platform/id"
	"civiq/internal/platform/logger"
)

// PassResult summarizes one drain pass over the queue.
type PassResult struct {
	Attempted int
	Synced    int
	Remaining int
}

type SyncService struct {
	store     queueout.Store
	submitter queueout.Submitter
	ids       id.Generator
	clock     clock.Clock

	mu      sync.Mutex
	running bool
}

func NewSyncService(store queueout.Store, submitter queueout.Submitter, ids id.Generator, clk clock.Clock) *SyncService {
	return &SyncService{store: store, submitter: submitter, ids: ids, clock: clk}
}

func (s *SyncService) Enqueue(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	entry.ID = s.ids.New()
	entry.Status = domain.StatusPendingSync
	entry.EnqueuedAt = s.clock.Now()
	if err := entry.Validate(); err != nil {
		return domain.Entry{}, err
	}
	if err := s.store.Enqueue(ctx, entry); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

func (s *SyncService) List(ctx context.Context) ([]domain.Entry, error) {
	return s.store.List(ctx)
}

func (s *SyncService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Pending reports whether the queue holds at least one entry.
func (s *SyncService) Pending(ctx context.Context) (bool, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

// Drain replays queued entries in enqueue order. Each success removes
// its entry immediately so an interrupted pass never re-creates work it
// already finished. Failures are logged and skipped; the pass keeps
// going so one poisoned entry cannot block the rest.
func (s *SyncService) Drain(ctx context.Context) (PassResult, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return PassResult{}, apperrors.ErrSyncInProgress
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	entries, err := s.store.List(ctx)
	if err != nil {
		return PassResult{}, fmt.Errorf("list queued entries: %w", err)
	}
	result := PassResult{Remaining: len(entries)}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Attempted++
		problemID, err := s.submitter.SubmitQueued(ctx, entry)
		if err != nil {
			logger.Warn("queued submission failed", "entry_id", entry.ID, "error", err)
			continue
		}
		if err := s.store.Remove(ctx, entry.ID); err != nil {
			// The server accepted the entry but local removal failed.
			// Leaving it queued means it may be submitted twice.
			logger.Error("remove synced entry", "entry_id", entry.ID, "error", err)
			continue
		}
		logger.Info("queued submission synced", "entry_id", entry.ID, "problem_id", problemID)
		result.Synced++
		result.Remaining--
	}
	return result, nil
}
