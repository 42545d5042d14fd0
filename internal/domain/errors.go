package domain

import "errors"

var (
	// Access errors
	ErrForbidden    = errors.New("action not permitted")
	ErrUnauthorized = errors.New("authentication required")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrNoSession    = errors.New("session not found")

	// Lookup errors
	ErrNotFound     = errors.New("resource not found")
	ErrUnknownRole  = errors.New("unknown role")
	ErrBackendError = errors.New("backend request failed")

	// Input errors
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidInput  = errors.New("invalid input")
)
