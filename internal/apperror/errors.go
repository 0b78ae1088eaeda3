// Package apperror defines the error taxonomy shared by the scheduling core.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports one or more rule violations found while
// validating a dependency edge set. It carries every violation, not
// just the first one.
type ValidationError struct {
	Errors []string
	Cycles [][]string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
	if len(e.Cycles) > 0 {
		var cycles []string
		for _, c := range e.Cycles {
			cycles = append(cycles, strings.Join(c, " -> "))
		}
		msg += fmt.Sprintf(" (cycles: %s)", strings.Join(cycles, ", "))
	}
	return msg
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// PersistenceError wraps a failed store operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence wraps err as a PersistenceError for the given operation.
// A nil err returns nil.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
