package errs

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is the sentinel for lookups that returned nothing.
var ErrObjectNotFound = errors.New("object not found")

// EntityNotFoundError reports a missing entity by kind and identifier.
// A nil ID is rendered as "null" so that lookups without an id still read naturally.
type EntityNotFoundError struct {
	Entity string
	ID     any
}

// NewEntityNotFoundError creates a not-found error for the entity kind and id.
func NewEntityNotFoundError(entity string, id any) *EntityNotFoundError {
	return &EntityNotFoundError{Entity: entity, ID: id}
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %s", e.Entity, formatID(e.ID))
}

func (e *EntityNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

func formatID(id any) string {
	switch v := id.(type) {
	case nil:
		return "null"
	case *int64:
		if v == nil {
			return "null"
		}
		return fmt.Sprint(*v)
	default:
		return sanitize(fmt.Sprint(v))
	}
}
