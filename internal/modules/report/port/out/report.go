package out

import (
	"context"

	"civiq/internal/modules/report/domain"
)

type ProblemAPI interface {
	Submit(ctx context.Context, draft domain.Draft) (domain.Problem, error)
	List(ctx context.Context) ([]domain.Problem, error)
	UpdateStatus(ctx context.Context, problemID string, status domain.Status) (domain.Problem, error)
}

type Classifier interface {
	Classify(ctx context.Context, photoName string, photo []byte) (domain.Category, error)
}

// Locator acquires the device position once per call; it is not a stream.
type Locator interface {
	CurrentPosition(ctx context.Context) (domain.Position, error)
}
