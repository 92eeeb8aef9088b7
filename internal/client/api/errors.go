package api

import (
	"errors"
	"fmt"

	"github.com/vortextv/vortexcli/internal/common"
)

// APIError is a non-2xx response from the backend, carrying the
// server-provided message when one was present in the body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// ErrorMessage extracts a user-facing message from an API call error:
// the server-provided message when available, the transport sentinel text
// for connectivity failures, and fallback otherwise.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, common.ErrServerUnavailable) {
		return common.ErrServerUnavailable.Error() + ". Please try again later."
	}
	return fallback
}

// errorBody is the error envelope the backend uses; some routes say
// "message", the access-code routes say "error".
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Err
}
