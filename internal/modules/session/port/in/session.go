package in

import (
	"context"

	"civiq/internal/modules/session/dto"
)

type Usecase interface {
	RequestOTP(ctx context.Context, input dto.RequestOTPInput) error
	Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error)
	Logout(ctx context.Context) error
	Active(ctx context.Context) (dto.ActiveOutput, error)
	// ForceLogout clears credentials without failing on absence; it is the
	// target of the gateway client's global 401 hook.
	ForceLogout()
}
