package service

import (
	"context"

	"civiq/internal/modules/session/domain"
	sessionout "civiq/internal/modules/session/port/out"
)

type SessionService struct {
	api sessionout.AuthAPI
}

func NewSessionService(api sessionout.AuthAPI) *SessionService {
	return &SessionService{api: api}
}

func (s *SessionService) RequestOTP(ctx context.Context, request domain.OTPRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}
	return s.api.GenerateOTP(ctx, request)
}

func (s *SessionService) Verify(ctx context.Context, verification domain.OTPVerification) (domain.Session, error) {
	if err := verification.Validate(); err != nil {
		return domain.Session{}, err
	}
	session, err := s.api.VerifyOTP(ctx, verification)
	if err != nil {
		return domain.Session{}, err
	}
	session.AccountType = verification.AccountType
	if err := session.Validate(); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}
