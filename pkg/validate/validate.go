// Package validate defines the input-validation error shared by the mesh
// builder and the growth animator.
package validate

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a caller-supplied value that violates a precondition.
type InvalidInputError struct {
	Op     string // operation that rejected the input, e.g. "heightfield.Build"
	Field  string // offending argument or field
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: %v: %s %s", e.Op, ErrInvalidInput, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid builds an InvalidInputError.
func Invalid(op, field, reason string) error {
	return &InvalidInputError{Op: op, Field: field, Reason: reason}
}
