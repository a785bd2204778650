package service

import (
	"context"

	"civiq/internal/modules/board/domain"
	boardout "civiq/internal/modules/board/port/out"
)

type BoardService struct {
	api boardout.BoardAPI
}

func NewBoardService(api boardout.BoardAPI) *BoardService {
	return &BoardService{api: api}
}

func (s *BoardService) Leaderboards(ctx context.Context) (domain.Leaderboards, error) {
	boards, err := s.api.Leaderboards(ctx)
	if err != nil {
		return domain.Leaderboards{}, err
	}
	return domain.Leaderboards{
		Users:      domain.Rank(boards.Users),
		Volunteers: domain.Rank(boards.Volunteers),
	}, nil
}

func (s *BoardService) Analytics(ctx context.Context) (domain.Analytics, error) {
	return s.api.Analytics(ctx)
}
