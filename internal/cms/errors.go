package cms

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested record does not exist or is unpublished.
var ErrNotFound = errors.New("content not found")

// ErrUnavailable indicates the CMS could not be reached or answered with an error.
var ErrUnavailable = errors.New("cms unavailable")

// ErrUnauthorized indicates the API token was rejected.
var ErrUnauthorized = errors.New("cms rejected api token")

// StatusError is a non-2xx answer from the CMS.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cms responded %s", e.Status)
}

// Unwrap lets callers treat every failed response as ErrUnavailable.
func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}

func (e *StatusError) retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}
