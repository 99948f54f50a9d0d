package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers unknown booking ids, unknown occasion sequence
	// numbers and missing answer rows on update.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateRespondent is returned when a name is registered a
	// second time for the same booking.
	ErrDuplicateRespondent = errors.New("respondent already registered")
)

// ValidationError reports a rejected field on a write operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}
