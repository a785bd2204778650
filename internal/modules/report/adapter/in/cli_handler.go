package in

import (
	"context"

	reportdto "civiq/internal/modules/report/dto"
	reportin "civiq/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Submit(ctx context.Context, input reportdto.SubmitInput) (reportdto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, input)
}

func (h CLIHandler) Classify(ctx context.Context, photoName string, photo []byte) (string, error) {
	return h.usecase.Classify(ctx, photoName, photo)
}

func (h CLIHandler) AcquirePosition(ctx context.Context) (reportdto.PositionOutput, error) {
	return h.usecase.AcquirePosition(ctx)
}

func (h CLIHandler) List(ctx context.Context) ([]reportdto.ProblemOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) UpdateStatus(ctx context.Context, problemID, status string) (reportdto.ProblemOutput, error) {
	return h.usecase.UpdateStatus(ctx, problemID, status)
}
