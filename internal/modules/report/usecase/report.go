package usecase

import (
	"context"
	"errors"
	"fmt"

	queuedto "civiq/internal/modules/queue/dto"
	queuein "civiq/internal/modules/queue/port/in"
	realtimein "civiq/internal/modules/realtime/port/in"
	"civiq/internal/modules/report/domain"
	"civiq/internal/modules/report/dto"
	reportin "civiq/internal/modules/report/port/in"
	"civiq/internal/modules/report/service"
	apperrors "civiq/internal/platform/errors"
	"civiq/internal/platform/logger"
)

type Interactor struct {
	svc      *service.ReportService
	queue    queuein.Usecase
	notifier realtimein.Notifier
}

func NewInteractor(svc *service.ReportService, queue queuein.Usecase, notifier realtimein.Notifier) reportin.Usecase {
	return &Interactor{svc: svc, queue: queue, notifier: notifier}
}

// Submit is the workflow's submitting stage. Connectivity-class failures
// divert the draft to the offline queue and arm the sync scheduler; every
// other failure is returned to the caller so the review step can surface it.
func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	var position *domain.Position
	if input.Lat != nil && input.Lng != nil {
		position = &domain.Position{Lat: *input.Lat, Lng: *input.Lng}
	}
	draft, err := i.svc.BuildDraft(input.Title, input.Description, input.Category, input.PhotoName, input.Photo, position)
	if err != nil {
		return dto.SubmitOutput{}, err
	}

	problem, err := i.svc.Submit(ctx, draft)
	if err == nil {
		i.notifier.EmitProblemUpdate(ctx, problem.ID, string(problem.Status))
		return dto.SubmitOutput{Problem: encodeProblem(problem)}, nil
	}
	if !errors.Is(err, apperrors.ErrConnectivity) {
		return dto.SubmitOutput{}, err
	}

	localID, queueErr := i.queue.Enqueue(ctx, queuedto.EnqueueInput{
		Title:       draft.Title,
		Description: draft.Description,
		Category:    string(draft.Category),
		PhotoName:   draft.PhotoName,
		Photo:       draft.Photo,
		Lat:         draft.Position.Lat,
		Lng:         draft.Position.Lng,
	})
	if queueErr != nil {
		// Local durability failed too: the submission has failed overall.
		return dto.SubmitOutput{}, fmt.Errorf("save report offline: %w", queueErr)
	}
	if _, armErr := i.queue.Arm(ctx); armErr != nil {
		logger.Warn("arm background sync", "error", armErr)
	}
	return dto.SubmitOutput{
		Queued:  true,
		LocalID: localID,
		Problem: dto.ProblemOutput{
			ID:          localID,
			Title:       draft.Title,
			Description: draft.Description,
			Category:    string(draft.Category),
			Status:      string(domain.StatusPendingSync),
			Lat:         draft.Position.Lat,
			Lng:         draft.Position.Lng,
		},
	}, nil
}

func (i *Interactor) Classify(ctx context.Context, photoName string, photo []byte) (string, error) {
	category, err := i.svc.Classify(ctx, photoName, photo)
	if err != nil {
		return "", err
	}
	return string(category), nil
}

func (i *Interactor) AcquirePosition(ctx context.Context) (dto.PositionOutput, error) {
	position, err := i.svc.AcquirePosition(ctx)
	if err != nil {
		return dto.PositionOutput{}, err
	}
	return dto.PositionOutput{Lat: position.Lat, Lng: position.Lng}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.ProblemOutput, error) {
	problems, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProblemOutput, 0, len(problems))
	for _, problem := range problems {
		out = append(out, encodeProblem(problem))
	}
	return out, nil
}

// UpdateStatus is the volunteer operation; on success the realtime channel
// gets an advisory nudge so nearby clients can re-fetch.
func (i *Interactor) UpdateStatus(ctx context.Context, problemID, status string) (dto.ProblemOutput, error) {
	problem, err := i.svc.UpdateStatus(ctx, problemID, domain.Status(status))
	if err != nil {
		return dto.ProblemOutput{}, err
	}
	i.notifier.EmitProblemUpdate(ctx, problem.ID, string(problem.Status))
	return encodeProblem(problem), nil
}

func encodeProblem(problem domain.Problem) dto.ProblemOutput {
	return dto.ProblemOutput{
		ID:          problem.ID,
		Title:       problem.Title,
		Description: problem.Description,
		Category:    string(problem.Category),
		Status:      string(problem.Status),
		PhotoURL:    problem.PhotoURL,
		Lat:         problem.Position.Lat,
		Lng:         problem.Position.Lng,
		ReportedBy:  problem.ReportedBy.Name,
		AssignedTo:  problem.AssignedTo,
		Points:      problem.Points,
	}
}
