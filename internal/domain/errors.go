package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// Lifecycle and recovery failures.
	ErrInvalidState       = errors.New("invalid state")
	ErrCorruptAuditRecord = errors.New("corrupt audit record")
	ErrUnknownEntityKind  = errors.New("unknown entity kind")
	ErrPersistence        = errors.New("persistence failure")
)

// ErrEntityGone is returned by restore when the entity referenced by an audit
// record (or the role owning a deleted claim) no longer exists.
// It matches ErrNotFound under errors.Is.
var ErrEntityGone = fmt.Errorf("entity no longer exists: %w", ErrNotFound)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// GuardError reports a deletion guard that refused a soft delete.
// It unwraps to ErrConflict.
type GuardError struct {
	Kind   EntityKind
	Key    string
	Reason string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("delete %s %s: %s", e.Kind, e.Key, e.Reason)
}

func (e *GuardError) Unwrap() error { return ErrConflict }
