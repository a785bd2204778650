package in

import (
	"context"

	"civiq/internal/modules/report/dto"
)

type Usecase interface {
	// Submit attempts online submission and falls back to the offline
	// queue on connectivity-class failures.
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
	// Classify is advisory; callers ignore its error and keep the current
	// category when it fails.
	Classify(ctx context.Context, photoName string, photo []byte) (string, error)
	AcquirePosition(ctx context.Context) (dto.PositionOutput, error)
	List(ctx context.Context) ([]dto.ProblemOutput, error)
	UpdateStatus(ctx context.Context, problemID, status string) (dto.ProblemOutput, error)
}
