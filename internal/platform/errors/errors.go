package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrUnauthorized        = errors.New("session rejected by server")
	ErrConnectivity        = errors.New("network unreachable")
	ErrSyncInProgress      = errors.New("sync pass already in progress")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrChannelClosed       = errors.New("realtime channel is not connected")
)
