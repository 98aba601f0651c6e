package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotFound           = errors.New("not found")
)

var (
	ErrEmailTaken    = fmt.Errorf("%w: email is already registered", ErrAccountExists)
	ErrUsernameTaken = fmt.Errorf("%w: username is already taken", ErrAccountExists)
)

// ValidationError reports a constraint violation on input data.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
