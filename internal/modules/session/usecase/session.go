package usecase

import (
	"context"
	"errors"

	"civiq/internal/modules/session/domain"
	"civiq/internal/modules/session/dto"
	sessionin "civiq/internal/modules/session/port/in"
	sessionout "civiq/internal/modules/session/port/out"
	"civiq/internal/modules/session/service"
	apperrors "civiq/internal/platform/errors"
	"civiq/internal/platform/logger"
)

type Interactor struct {
	svc   *service.SessionService
	store sessionout.CredentialStore
}

func NewInteractor(svc *service.SessionService, store sessionout.CredentialStore) sessionin.Usecase {
	return &Interactor{svc: svc, store: store}
}

func (i *Interactor) RequestOTP(ctx context.Context, input dto.RequestOTPInput) error {
	return i.svc.RequestOTP(ctx, domain.OTPRequest{
		Name:    input.Name,
		Contact: input.Contact,
		Method:  domain.ContactMethod(input.Method),
	})
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error) {
	session, err := i.svc.Verify(ctx, domain.OTPVerification{
		OTPRequest: domain.OTPRequest{
			Name:    input.Name,
			Contact: input.Contact,
			Method:  domain.ContactMethod(input.Method),
		},
		Code:        input.Code,
		AccountType: domain.AccountType(input.AccountType),
	})
	if err != nil {
		return dto.LoginOutput{}, err
	}
	if err := i.store.Save(ctx, session); err != nil {
		return dto.LoginOutput{}, err
	}
	return dto.LoginOutput{AccountType: string(session.AccountType), UserID: session.UserID}, nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.store.Clear(ctx)
}

func (i *Interactor) Active(ctx context.Context) (dto.ActiveOutput, error) {
	session, err := i.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotAuthenticated) {
			return dto.ActiveOutput{}, nil
		}
		return dto.ActiveOutput{}, err
	}
	return dto.ActiveOutput{
		Authenticated: session.Authenticated(),
		AccountType:   string(session.AccountType),
		UserID:        session.UserID,
	}, nil
}

func (i *Interactor) ForceLogout() {
	if err := i.store.Clear(context.Background()); err != nil {
		logger.Warn("clear credentials after rejected session", "error", err)
	}
}
