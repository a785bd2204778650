package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"civiq/internal/modules/queue/domain"
	"civiq/internal/modules/queue/dto"
	queuein "civiq/internal/modules/queue/port/in"
	"civiq/internal/modules/queue/service"
	"civiq/internal/modules/queue/usecase"
	apperrors "civiq/internal/platform/errors"
)

type memStore struct {
	entries []domain.Entry
}

func (m *memStore) Enqueue(_ context.Context, entry domain.Entry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memStore) List(context.Context) ([]domain.Entry, error) {
	out := make([]domain.Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memStore) Remove(_ context.Context, id string) error {
	for i, entry := range m.entries {
		if entry.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (m *memStore) Clear(context.Context) error {
	m.entries = nil
	return nil
}

type okSubmitter struct{}

func (okSubmitter) SubmitQueued(_ context.Context, entry domain.Entry) (string, error) {
	return "remote-" + entry.ID, nil
}

// flakySubmitter fails every call until the outage lifts.
type flakySubmitter struct {
	failures int
	calls    int
}

func (f *flakySubmitter) SubmitQueued(_ context.Context, entry domain.Entry) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("server unreachable")
	}
	return "remote-" + entry.ID, nil
}

type fakeScheduler struct {
	held     bool
	acquires int
	releases int
	spawns   int
}

func (f *fakeScheduler) Acquire(context.Context) (bool, error) {
	f.acquires++
	if f.held {
		return false, nil
	}
	f.held = true
	return true, nil
}

func (f *fakeScheduler) Release(context.Context) error {
	f.releases++
	f.held = false
	return nil
}

func (f *fakeScheduler) Spawn(context.Context) error {
	f.spawns++
	return nil
}

func (f *fakeScheduler) Armed(context.Context) (bool, error) {
	return f.held, nil
}

type testIDs struct{ n int }

func (g *testIDs) New() string {
	g.n++
	return string(rune('a' + g.n - 1))
}

// testClock returns instantly from Sleep and records the waits.
type testClock struct {
	sleeps []time.Duration
}

func (*testClock) Now() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }

func (c *testClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps = append(c.sleeps, d)
	return nil
}

func newUsecase(store *memStore, scheduler *fakeScheduler) queuein.Usecase {
	return usecase.NewInteractor(service.NewSyncService(store, okSubmitter{}, &testIDs{}, &testClock{}), scheduler, &testClock{})
}

func TestArmSkipsEmptyQueue(t *testing.T) {
	t.Parallel()
	scheduler := &fakeScheduler{}
	uc := newUsecase(&memStore{}, scheduler)
	armed, err := uc.Arm(context.Background())
	if err != nil {
		t.Fatalf("arm: %v", err)
	}
	if armed || scheduler.spawns != 0 {
		t.Fatalf("empty queue must not spawn a worker")
	}
}

func TestArmSpawnsOnceWhilePending(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	scheduler := &fakeScheduler{}
	uc := newUsecase(store, scheduler)
	if _, err := uc.Enqueue(context.Background(), dto.EnqueueInput{Title: "t", Description: "d", Category: "waste"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	armed, err := uc.Arm(context.Background())
	if err != nil || !armed {
		t.Fatalf("first arm should spawn: armed=%t err=%v", armed, err)
	}
	if scheduler.spawns != 1 {
		t.Fatalf("expected one spawn, got %d", scheduler.spawns)
	}

	// A live worker holds the slot; arming again is a no-op.
	scheduler.held = true
	armed, err = uc.Arm(context.Background())
	if err != nil || armed {
		t.Fatalf("second arm should be a no-op: armed=%t err=%v", armed, err)
	}
	if scheduler.spawns != 1 {
		t.Fatalf("no second spawn expected, got %d", scheduler.spawns)
	}
}

func TestSyncHoldsSlotForTheWholePass(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	scheduler := &fakeScheduler{}
	uc := newUsecase(store, scheduler)
	if _, err := uc.Enqueue(context.Background(), dto.EnqueueInput{Title: "t", Description: "d", Category: "waste"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	out, err := uc.Sync(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if out.Synced != 1 || out.Remaining != 0 {
		t.Fatalf("unexpected sync output %+v", out)
	}
	if scheduler.acquires != 1 || scheduler.releases != 1 {
		t.Fatalf("slot should be acquired and released once, got %d/%d", scheduler.acquires, scheduler.releases)
	}
}

func TestSyncRefusesWhenSlotHeld(t *testing.T) {
	t.Parallel()
	scheduler := &fakeScheduler{held: true}
	uc := newUsecase(&memStore{}, scheduler)
	if _, err := uc.Sync(context.Background()); !errors.Is(err, apperrors.ErrSyncInProgress) {
		t.Fatalf("held slot should refuse the pass, got %v", err)
	}
}

func TestRunWorkerRetriesUntilConnectivityReturns(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	submitter := &flakySubmitter{failures: 2}
	scheduler := &fakeScheduler{}
	clk := &testClock{}
	uc := usecase.NewInteractor(service.NewSyncService(store, submitter, &testIDs{}, clk), scheduler, clk)
	if _, err := uc.Enqueue(context.Background(), dto.EnqueueInput{Title: "t", Description: "d", Category: "waste"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	out, err := uc.RunWorker(context.Background())
	if err != nil {
		t.Fatalf("run worker: %v", err)
	}
	if out.Synced != 1 || out.Remaining != 0 {
		t.Fatalf("entry should sync on the third pass, got %+v", out)
	}
	if submitter.calls != 3 {
		t.Fatalf("expected 3 submission attempts, got %d", submitter.calls)
	}
	if len(clk.sleeps) != 2 {
		t.Fatalf("two backoff waits expected before success, got %v", clk.sleeps)
	}
	if scheduler.acquires != 1 || scheduler.releases != 1 {
		t.Fatalf("the slot should be held across all passes, got %d/%d", scheduler.acquires, scheduler.releases)
	}
	if len(store.entries) != 0 {
		t.Fatalf("queue should be empty after the worker run")
	}
}

func TestRunWorkerStopsAfterBoundedPasses(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	submitter := &flakySubmitter{failures: 100}
	scheduler := &fakeScheduler{}
	clk := &testClock{}
	uc := usecase.NewInteractor(service.NewSyncService(store, submitter, &testIDs{}, clk), scheduler, clk)
	if _, err := uc.Enqueue(context.Background(), dto.EnqueueInput{Title: "t", Description: "d", Category: "waste"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	out, err := uc.RunWorker(context.Background())
	if err != nil {
		t.Fatalf("run worker: %v", err)
	}
	if out.Synced != 0 || out.Remaining != 1 {
		t.Fatalf("entry should survive a fully offline run, got %+v", out)
	}
	if submitter.calls > 8 {
		t.Fatalf("worker must give up after a bounded number of passes, made %d attempts", submitter.calls)
	}
	if scheduler.releases != 1 {
		t.Fatalf("slot must be released when the worker gives up")
	}
}

func TestRunWorkerRefusesWhenSlotHeld(t *testing.T) {
	t.Parallel()
	scheduler := &fakeScheduler{held: true}
	uc := newUsecase(&memStore{}, scheduler)
	if _, err := uc.RunWorker(context.Background()); !errors.Is(err, apperrors.ErrSyncInProgress) {
		t.Fatalf("held slot should refuse the worker, got %v", err)
	}
}
