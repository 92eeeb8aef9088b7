package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Transport-level errors.
	ErrServerUnavailable = errors.New("no response received from server")

	// Auth errors (invalid or malformed token).
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
	ErrNoToken      = errors.New("no authentication token received")

	// Session-level errors.
	ErrNotAuthenticated = errors.New("authentication required")
)
