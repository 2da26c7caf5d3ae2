package domain

import "errors"

var (
	ErrInvalidHoldType     = errors.New("invalid hold type")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrExpiryNotFuture     = errors.New("expiresAt must be in the future")
	ErrClientNotFound      = errors.New("client does not exist")
	ErrClientNameRequired  = errors.New("client name required")
	ErrHoldNotFound        = errors.New("hold not found")
	ErrHoldNotActive       = errors.New("hold already closed")
)
