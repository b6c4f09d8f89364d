package domain

import (
	"errors"
	"strings"
)

var (
	// ErrStorageUnavailable wraps any failure to open, migrate or write
	// the backing database file.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrConstraintViolation is returned when the schema rejects a row,
	// e.g. a preferred_contact outside the allowed set.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ValidationError carries one message per failing field, in field order.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid submission: " + strings.Join(e.Violations, "; ")
}
