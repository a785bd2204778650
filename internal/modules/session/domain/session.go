package domain

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "civiq/internal/platform/errors"
)

const SchemaVersion = 1

type AccountType string

const (
	AccountTypeUser      AccountType = "user"
	AccountTypeVolunteer AccountType = "volunteer"
)

func (a AccountType) Validate() error {
	switch a {
	case AccountTypeUser, AccountTypeVolunteer:
		return nil
	default:
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrInvalidInput, string(a))
	}
}

type ContactMethod string

const (
	ContactMethodPhone ContactMethod = "phone"
	ContactMethodEmail ContactMethod = "email"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Session is the token/account-type pair. The two fields are persisted and
// cleared together; a session with only one of them set is invalid.
type Session struct {
	Token       string      `json:"token"`
	AccountType AccountType `json:"account_type"`
	UserID      string      `json:"user_id,omitempty"`
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.AccountType != ""
}

func (s Session) Validate() error {
	if s.Token == "" {
		return fmt.Errorf("%w: token is required", apperrors.ErrInvalidInput)
	}
	return s.AccountType.Validate()
}

type OTPRequest struct {
	Name    string
	Contact string
	Method  ContactMethod
}

func (r OTPRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrInvalidInput)
	}
	switch r.Method {
	case ContactMethodPhone:
		if !phonePattern.MatchString(r.Contact) {
			return fmt.Errorf("%w: phone must be 10 digits", apperrors.ErrInvalidInput)
		}
	case ContactMethodEmail:
		if !strings.Contains(r.Contact, "@") {
			return fmt.Errorf("%w: malformed email address", apperrors.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: contact method must be phone or email", apperrors.ErrInvalidInput)
	}
	return nil
}

type OTPVerification struct {
	OTPRequest
	Code        string
	AccountType AccountType
}

func (v OTPVerification) Validate() error {
	if err := v.OTPRequest.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(v.Code) == "" {
		return fmt.Errorf("%w: otp code is required", apperrors.ErrInvalidInput)
	}
	return v.AccountType.Validate()
}
