package domain

import "errors"

// ErrNotFound is returned when the requested id has no matching row.
// Repositories translate driver-level "no rows" results into this value so
// handlers never have to inspect SQL errors.
var ErrNotFound = errors.New("todo not found")

// ErrNoFields is returned when an update request carries no updatable fields.
var ErrNoFields = &ValidationError{Reason: "no fields to update"}

// ValidationError marks client input that fails a precondition. The HTTP
// layer maps it to a 400; everything else that is not ErrNotFound becomes
// a 500 with the store error text attached.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
