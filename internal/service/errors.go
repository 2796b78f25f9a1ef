// Package service carries the business rules between the transport
// adapters and the repositories: presence/range validation, trimming and
// case normalization, uniqueness checks and server-stamped fields.
// Repository failures are wrapped with context and re-returned.
package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound mirrors repository.ErrNotFound at the service boundary.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned by Login for a bad email/password pair.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrEmailInUse is returned when a coach email belongs to another coach.
	ErrEmailInUse = errors.New("a coach with this email already exists")

	// ErrCoachHasChats blocks deleting a coach that still has chat history.
	ErrCoachHasChats = errors.New("cannot delete coach because chat history remains")
)

// ValidationError reports a single rejected input field. Transport adapters
// map it to a 400 with the field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func wrap(action string, err error) error {
	return fmt.Errorf("%s: %w", action, err)
}
