package in

import (
	"context"

	queuedto "civiq/internal/modules/queue/dto"
	queuein "civiq/internal/modules/queue/port/in"
)

type CLIHandler struct {
	usecase queuein.Usecase
}

func NewCLIHandler(usecase queuein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]queuedto.EntryOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Sync(ctx context.Context) (queuedto.SyncOutput, error) {
	return h.usecase.Sync(ctx)
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Arm(ctx context.Context) (bool, error) {
	return h.usecase.Arm(ctx)
}

func (h CLIHandler) RunWorker(ctx context.Context) (queuedto.SyncOutput, error) {
	return h.usecase.RunWorker(ctx)
}
