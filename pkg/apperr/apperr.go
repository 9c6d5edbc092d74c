// Package apperr defines the error categories shared by every bounded context.
// Domain packages declare their own sentinels on top of these so that the HTTP
// boundary can classify any error with errors.Is without importing the domains.
package apperr

import (
	"errors"
	"fmt"
)

// Error categories. Match with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
)

// ValidationError reports a rejected field value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Invalid returns a *ValidationError for field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Invalidf is Invalid with a formatted reason.
func Invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFound returns "<resource> not found" wrapping ErrNotFound.
func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// Conflict returns "<resource> already exists" wrapping ErrConflict.
func Conflict(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrConflict)
}

// IsValidation reports whether err is in the validation category.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is in the not-found category.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is in the conflict category.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
