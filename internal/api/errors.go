package api

import (
	"errors"
	"fmt"
)

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	Code int
	// Body is the raw response text, surfaced to users unmodified.
	Body    string
	readErr error
}

func (e *StatusError) Error() string {
	if e.readErr != nil {
		return fmt.Sprintf("HTTP error! status: %d (body unreadable: %v)", e.Code, e.readErr)
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

func (e *StatusError) Unwrap() error {
	return e.readErr
}

// AsStatusError extracts a *StatusError from err.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
