package in

import (
	"context"

	sessiondto "civiq/internal/modules/session/dto"
	sessionin "civiq/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) RequestOTP(ctx context.Context, name, contact, method string) error {
	return h.usecase.RequestOTP(ctx, sessiondto.RequestOTPInput{Name: name, Contact: contact, Method: method})
}

func (h CLIHandler) Login(ctx context.Context, name, contact, method, code, accountType string) (sessiondto.LoginOutput, error) {
	return h.usecase.Login(ctx, sessiondto.LoginInput{
		Name:        name,
		Contact:     contact,
		Method:      method,
		Code:        code,
		AccountType: accountType,
	})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Active(ctx context.Context) (sessiondto.ActiveOutput, error) {
	return h.usecase.Active(ctx)
}
