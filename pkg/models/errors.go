package models

import (
	"errors"
	"fmt"
)

var ErrBackendUnavailable = errors.New("backend unavailable")

var ErrMalformedResponse = errors.New("malformed backend response")

var ErrNotImplemented = errors.New("not implemented")

// BackendUnavailableError signals that the backend could not be reached or did
// not produce a usable response at the transport level.
type BackendUnavailableError struct {
	Message string
	Cause   error
}

func (e *BackendUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BackendUnavailableError) Unwrap() error {
	return ErrBackendUnavailable
}

func NewBackendUnavailableError(message string, cause error) error {
	return &BackendUnavailableError{Message: message, Cause: cause}
}

// MalformedResponseError signals that the backend responded but the body could
// not be interpreted (invalid JSON, or a metadata document that is not an
// object).
type MalformedResponseError struct {
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}

func NewMalformedResponseError(message string, cause error) error {
	return &MalformedResponseError{Message: message, Cause: cause}
}
