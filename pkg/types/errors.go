package types

import (
	"errors"
	"fmt"
)

// Domain errors. Every operation in this package and in pkg/memok returns
// one of these (possibly wrapped) so callers can match with errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrDuplicatePhone = errors.New("phone number already exists")
)

// ValidationError describes a field value that was rejected. It unwraps to
// ErrValidation.
type ValidationError struct {
	Field  string // Field kind, e.g. "phone" or "birthday".
	Value  string // The raw input that was rejected.
	Reason string // Human-readable cause.
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
