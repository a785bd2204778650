package in

import (
	"context"

	"civiq/internal/modules/board/dto"
)

type Usecase interface {
	// Leaderboard returns both boards, each ranked by its own metric
	// descending (contributions for users, points for volunteers).
	Leaderboard(ctx context.Context) (dto.LeaderboardOutput, error)
	Analytics(ctx context.Context) (dto.AnalyticsOutput, error)
}
