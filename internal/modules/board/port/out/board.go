package out

import (
	"context"

	"civiq/internal/modules/board/domain"
)

type BoardAPI interface {
	Leaderboards(ctx context.Context) (domain.Leaderboards, error)
	Analytics(ctx context.Context) (domain.Analytics, error)
}
