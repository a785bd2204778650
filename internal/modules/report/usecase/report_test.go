package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	queuedto "civiq/internal/modules/queue/dto"
	"civiq/internal/modules/report/domain"
	"civiq/internal/modules/report/dto"
	"civiq/internal/modules/report/service"
	"civiq/internal/modules/report/usecase"
	apperrors "civiq/internal/platform/errors"
)

type fakeProblemAPI struct {
	submitErr error
	problem   domain.Problem
	submits   int
	updates   int
}

func (f *fakeProblemAPI) Submit(context.Context, domain.Draft) (domain.Problem, error) {
	f.submits++
	if f.submitErr != nil {
		return domain.Problem{}, f.submitErr
	}
	return f.problem, nil
}

func (f *fakeProblemAPI) List(context.Context) ([]domain.Problem, error) {
	return []domain.Problem{f.problem}, nil
}

func (f *fakeProblemAPI) UpdateStatus(_ context.Context, id string, status domain.Status) (domain.Problem, error) {
	f.updates++
	problem := f.problem
	problem.ID = id
	problem.Status = status
	return problem, nil
}

type fakeLocator struct{}

func (fakeLocator) CurrentPosition(context.Context) (domain.Position, error) {
	return domain.Position{Lat: 10, Lng: 20}, nil
}

type fakeQueue struct {
	enqueued   []queuedto.EnqueueInput
	enqueueErr error
	armCalls   int
}

func (f *fakeQueue) Enqueue(_ context.Context, input queuedto.EnqueueInput) (string, error) {
	if f.enqueueErr != nil {
		return "", f.enqueueErr
	}
	f.enqueued = append(f.enqueued, input)
	return fmt.Sprintf("local-%d", len(f.enqueued)), nil
}

func (f *fakeQueue) List(context.Context) ([]queuedto.EntryOutput, error) { return nil, nil }
func (f *fakeQueue) Sync(context.Context) (queuedto.SyncOutput, error) {
	return queuedto.SyncOutput{}, nil
}
func (f *fakeQueue) Clear(context.Context) error { return nil }
func (f *fakeQueue) Arm(context.Context) (bool, error) {
	f.armCalls++
	return true, nil
}
func (f *fakeQueue) RunWorker(context.Context) (queuedto.SyncOutput, error) {
	return queuedto.SyncOutput{}, nil
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) EmitProblemUpdate(_ context.Context, problemID, status string) {
	f.events = append(f.events, problemID+":"+status)
}

func validInput() dto.SubmitInput {
	lat, lng := 10.0, 20.0
	return dto.SubmitInput{
		Title:       "overflowing bin",
		Description: "bin on main street",
		Category:    "waste",
		PhotoName:   "bin.jpg",
		Photo:       []byte{1, 2, 3},
		Lat:         &lat,
		Lng:         &lng,
	}
}

func TestSubmitOnlineSuccess(t *testing.T) {
	t.Parallel()
	api := &fakeProblemAPI{problem: domain.Problem{ID: "p-1", Status: domain.StatusPending}}
	queue := &fakeQueue{}
	notifier := &fakeNotifier{}
	uc := usecase.NewInteractor(service.NewReportService(api, nil, fakeLocator{}), queue, notifier)

	out, err := uc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Queued {
		t.Fatalf("online submission must not be queued")
	}
	if out.Problem.ID != "p-1" {
		t.Fatalf("unexpected problem id %q", out.Problem.ID)
	}
	if len(queue.enqueued) != 0 {
		t.Fatalf("nothing should be enqueued on success, got %d", len(queue.enqueued))
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected one realtime nudge, got %d", len(notifier.events))
	}
}

func TestSubmitConnectivityFailureQueuesDraft(t *testing.T) {
	t.Parallel()
	api := &fakeProblemAPI{submitErr: fmt.Errorf("%w: dial tcp refused", apperrors.ErrConnectivity)}
	queue := &fakeQueue{}
	notifier := &fakeNotifier{}
	uc := usecase.NewInteractor(service.NewReportService(api, nil, fakeLocator{}), queue, notifier)

	out, err := uc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("offline fallback should succeed: %v", err)
	}
	if !out.Queued {
		t.Fatalf("connectivity failure must queue the draft")
	}
	if out.LocalID == "" {
		t.Fatalf("queued submission must carry a local id")
	}
	if out.Problem.Status != string(domain.StatusPendingSync) {
		t.Fatalf("queued problem status should be pending_sync, got %s", out.Problem.Status)
	}
	if len(queue.enqueued) != 1 {
		t.Fatalf("expected exactly one queued entry, got %d", len(queue.enqueued))
	}
	if queue.armCalls != 1 {
		t.Fatalf("expected sync to be armed once, got %d", queue.armCalls)
	}
	if len(notifier.events) != 0 {
		t.Fatalf("no realtime nudge for an offline submission")
	}
}

func TestSubmitServerRejectionIsNotQueued(t *testing.T) {
	t.Parallel()
	api := &fakeProblemAPI{submitErr: errors.New("title too long")}
	queue := &fakeQueue{}
	uc := usecase.NewInteractor(service.NewReportService(api, nil, fakeLocator{}), queue, &fakeNotifier{})

	_, err := uc.Submit(context.Background(), validInput())
	if err == nil {
		t.Fatalf("server rejection must surface to the caller")
	}
	if len(queue.enqueued) != 0 {
		t.Fatalf("rejected submissions must not be queued, got %d", len(queue.enqueued))
	}
	if queue.armCalls != 0 {
		t.Fatalf("sync must not be armed on rejection")
	}
}

func TestSubmitQueuePersistenceFailureFailsOverall(t *testing.T) {
	t.Parallel()
	api := &fakeProblemAPI{submitErr: fmt.Errorf("%w: no route to host", apperrors.ErrConnectivity)}
	queue := &fakeQueue{enqueueErr: errors.New("disk full")}
	uc := usecase.NewInteractor(service.NewReportService(api, nil, fakeLocator{}), queue, &fakeNotifier{})

	_, err := uc.Submit(context.Background(), validInput())
	if err == nil {
		t.Fatalf("submission must fail when local durability fails too")
	}
}

func TestSubmitInvalidDraftNeverReachesAPI(t *testing.T) {
	t.Parallel()
	api := &fakeProblemAPI{}
	uc := usecase.NewInteractor(service.NewReportService(api, nil, fakeLocator{}), &fakeQueue{}, &fakeNotifier{})

	input := validInput()
	input.Photo = nil
	if _, err := uc.Submit(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("invalid draft should fail validation, got %v", err)
	}
	if api.submits != 0 {
		t.Fatalf("invalid draft must not reach the api")
	}
}

func TestUpdateStatusEmitsNudge(t *testing.T) {
	t.Parallel()
	api := &fakeProblemAPI{}
	notifier := &fakeNotifier{}
	uc := usecase.NewInteractor(service.NewReportService(api, nil, fakeLocator{}), &fakeQueue{}, notifier)

	out, err := uc.UpdateStatus(context.Background(), "p-9", "solved")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if out.Status != "solved" {
		t.Fatalf("unexpected status %s", out.Status)
	}
	if len(notifier.events) != 1 || notifier.events[0] != "p-9:solved" {
		t.Fatalf("expected nudge p-9:solved, got %v", notifier.events)
	}

	if _, err := uc.UpdateStatus(context.Background(), "p-9", "pending"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("volunteers may not set pending, got %v", err)
	}
	if api.updates != 1 {
		t.Fatalf("rejected status must not reach the api")
	}
}

func TestClassifyWithoutClassifier(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewReportService(&fakeProblemAPI{}, nil, fakeLocator{}), &fakeQueue{}, &fakeNotifier{})
	if _, err := uc.Classify(context.Background(), "a.jpg", []byte{1}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("missing classifier should map to not found, got %v", err)
	}
}
