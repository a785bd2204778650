package in

import (
	"context"

	boarddto "civiq/internal/modules/board/dto"
	boardin "civiq/internal/modules/board/port/in"
)

type CLIHandler struct {
	usecase boardin.Usecase
}

func NewCLIHandler(usecase boardin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Leaderboard(ctx context.Context) (boarddto.LeaderboardOutput, error) {
	return h.usecase.Leaderboard(ctx)
}

func (h CLIHandler) Analytics(ctx context.Context) (boarddto.AnalyticsOutput, error) {
	return h.usecase.Analytics(ctx)
}
