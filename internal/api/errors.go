package api

import "errors"

var (
	// ErrServerUnavailable indicates the onboarding API is unreachable.
	ErrServerUnavailable = errors.New("onboarding server unavailable")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
)

// APIError is a server-reported application error: the `error` field of a
// non-success JSON response, falling back to the HTTP status text when the
// body carries no such field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is lets callers match 404 responses against ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}
