package out

import (
	"context"

	"civiq/internal/modules/session/domain"
)

type CredentialStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

type AuthAPI interface {
	GenerateOTP(ctx context.Context, request domain.OTPRequest) error
	VerifyOTP(ctx context.Context, verification domain.OTPVerification) (domain.Session, error)
}
