package out

import (
	"context"
	"fmt"

	"civiq/internal/modules/session/domain"
	sessionout "civiq/internal/modules/session/port/out"
	"civiq/internal/platform/rest"
)

type otpRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
	Method string `json:"method"`
}

type verifyRequest struct {
	otpRequest
	OTP      string `json:"otp"`
	UserType string `json:"userType"`
}

type verifyResponse struct {
	Token string `json:"token"`
	User  struct {
		ID string `json:"id"`
	} `json:"user"`
}

type RESTAuthAPI struct {
	client *rest.Client
}

func NewRESTAuthAPI(client *rest.Client) sessionout.AuthAPI {
	return &RESTAuthAPI{client: client}
}

func (a *RESTAuthAPI) GenerateOTP(ctx context.Context, request domain.OTPRequest) error {
	if err := a.client.PostJSON(ctx, "/auth/generate-otp", encodeOTPRequest(request), nil); err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	return nil
}

func (a *RESTAuthAPI) VerifyOTP(ctx context.Context, verification domain.OTPVerification) (domain.Session, error) {
	payload := verifyRequest{
		otpRequest: encodeOTPRequest(verification.OTPRequest),
		OTP:        verification.Code,
		UserType:   string(verification.AccountType),
	}
	response := verifyResponse{}
	if err := a.client.PostJSON(ctx, "/auth/verify-otp", payload, &response); err != nil {
		return domain.Session{}, fmt.Errorf("verify otp: %w", err)
	}
	return domain.Session{
		Token:       response.Token,
		AccountType: verification.AccountType,
		UserID:      response.User.ID,
	}, nil
}

func encodeOTPRequest(request domain.OTPRequest) otpRequest {
	encoded := otpRequest{Name: request.Name, Method: string(request.Method)}
	if request.Method == domain.ContactMethodEmail {
		encoded.Email = request.Contact
	} else {
		encoded.Phone = request.Contact
	}
	return encoded
}
