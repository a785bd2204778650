package dto

type RequestOTPInput struct {
	Name    string
	Contact string
	Method  string
}

type LoginInput struct {
	Name        string
	Contact     string
	Method      string
	Code        string
	AccountType string
}

type LoginOutput struct {
	AccountType string
	UserID      string
}

type ActiveOutput struct {
	Authenticated bool
	AccountType   string
	UserID        string
}
