package out

import (
	"context"
	"fmt"

	"civiq/internal/modules/board/domain"
	boardout "civiq/internal/modules/board/port/out"
	"civiq/internal/platform/rest"
)

type RESTBoardAPI struct {
	client *rest.Client
}

func NewRESTBoardAPI(client *rest.Client) boardout.BoardAPI {
	return &RESTBoardAPI{client: client}
}

type leaderPayload struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Points        int    `json:"points"`
	Contributions int    `json:"contributions"`
}

func (a *RESTBoardAPI) Leaderboards(ctx context.Context) (domain.Leaderboards, error) {
	payload := struct {
		Users      []leaderPayload `json:"users"`
		Volunteers []leaderPayload `json:"volunteers"`
	}{}
	if err := a.client.GetJSON(ctx, "/problems/leaderboards", &payload); err != nil {
		return domain.Leaderboards{}, fmt.Errorf("fetch leaderboards: %w", err)
	}
	return domain.Leaderboards{
		Users:      leaderEntries(payload.Users),
		Volunteers: leaderEntries(payload.Volunteers),
	}, nil
}

func leaderEntries(payloads []leaderPayload) []domain.LeaderEntry {
	entries := make([]domain.LeaderEntry, 0, len(payloads))
	for _, payload := range payloads {
		entries = append(entries, domain.LeaderEntry{
			ID:            payload.ID,
			Name:          payload.Name,
			Points:        payload.Points,
			Contributions: payload.Contributions,
		})
	}
	return entries
}

func (a *RESTBoardAPI) Analytics(ctx context.Context) (domain.Analytics, error) {
	payload := struct {
		TotalReports         int            `json:"totalReports"`
		ResolvedReports      int            `json:"resolvedReports"`
		CategoryDistribution map[string]int `json:"categoryDistribution"`
		DailyReports         []struct {
			Date  string `json:"date"`
			Count int    `json:"count"`
		} `json:"dailyReports"`
		Predictions struct {
			NextWeekEstimate int    `json:"nextWeekEstimate"`
			Trend            string `json:"trend"`
		} `json:"predictions"`
		ImpactMetrics struct {
			ResolutionRate    float64 `json:"resolutionRate"`
			AvgResolutionDays float64 `json:"avgResolutionDays"`
		} `json:"impactMetrics"`
	}{}
	if err := a.client.GetJSON(ctx, "/analytics", &payload); err != nil {
		return domain.Analytics{}, fmt.Errorf("fetch analytics: %w", err)
	}
	daily := make([]domain.DailyCount, 0, len(payload.DailyReports))
	for _, day := range payload.DailyReports {
		daily = append(daily, domain.DailyCount{Date: day.Date, Count: day.Count})
	}
	return domain.Analytics{
		TotalReports:         payload.TotalReports,
		ResolvedReports:      payload.ResolvedReports,
		CategoryDistribution: payload.CategoryDistribution,
		DailyReports:         daily,
		Predictions: domain.Predictions{
			NextWeekEstimate: payload.Predictions.NextWeekEstimate,
			Trend:            payload.Predictions.Trend,
		},
		Impact: domain.ImpactMetrics{
			ResolutionRate:    payload.ImpactMetrics.ResolutionRate,
			AvgResolutionDays: payload.ImpactMetrics.AvgResolutionDays,
		},
	}, nil
}
