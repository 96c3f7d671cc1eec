package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the service layer that callers are
// expected to branch on wraps exactly one of these.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrExternalService = errors.New("external service error")
)

// Error carries a human readable message tagged with one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidStatef(format string, args ...any) error {
	return &Error{Kind: ErrInvalidState, Message: fmt.Sprintf(format, args...)}
}

func ExternalServicef(format string, args ...any) error {
	return &Error{Kind: ErrExternalService, Message: fmt.Sprintf(format, args...)}
}
