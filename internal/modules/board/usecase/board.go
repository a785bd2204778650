package usecase

import (
	"context"

	"civiq/internal/modules/board/domain"
	"civiq/internal/modules/board/dto"
	boardin "civiq/internal/modules/board/port/in"
	"civiq/internal/modules/board/service"
)

type Interactor struct {
	svc *service.BoardService
}

func NewInteractor(svc *service.BoardService) boardin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Leaderboard(ctx context.Context) (dto.LeaderboardOutput, error) {
	boards, err := i.svc.Leaderboards(ctx)
	if err != nil {
		return dto.LeaderboardOutput{}, err
	}
	return dto.LeaderboardOutput{
		Users:      leaderOutputs(boards.Users),
		Volunteers: leaderOutputs(boards.Volunteers),
	}, nil
}

func leaderOutputs(ranked []domain.LeaderEntry) []dto.LeaderEntryOutput {
	out := make([]dto.LeaderEntryOutput, 0, len(ranked))
	for index, entry := range ranked {
		rank := index + 1
		out = append(out, dto.LeaderEntryOutput{
			Rank:          rank,
			Badge:         domain.Badge(rank),
			Name:          entry.Name,
			Points:        entry.Points,
			Contributions: entry.Contributions,
			Level:         domain.LevelFor(entry.Points).Name,
		})
	}
	return out
}

func (i *Interactor) Analytics(ctx context.Context) (dto.AnalyticsOutput, error) {
	analytics, err := i.svc.Analytics(ctx)
	if err != nil {
		return dto.AnalyticsOutput{}, err
	}
	daily := make([]dto.DailyCountOutput, 0, len(analytics.DailyReports))
	for _, day := range analytics.DailyReports {
		daily = append(daily, dto.DailyCountOutput{Date: day.Date, Count: day.Count})
	}
	return dto.AnalyticsOutput{
		TotalReports:         analytics.TotalReports,
		ResolvedReports:      analytics.ResolvedReports,
		CategoryDistribution: analytics.CategoryDistribution,
		DailyReports:         daily,
		NextWeekEstimate:     analytics.Predictions.NextWeekEstimate,
		Trend:                analytics.Predictions.Trend,
		ResolutionRate:       analytics.Impact.ResolutionRate,
		AvgResolutionDays:    analytics.Impact.AvgResolutionDays,
	}, nil
}
