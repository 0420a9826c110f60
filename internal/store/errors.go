package store

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned when a write violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrDuplicateUsername is returned when registering a taken username.
	ErrDuplicateUsername = fmt.Errorf("username already exists: %w", ErrDuplicateKey)

	// ErrUnsupportedFilter is returned when a collection cannot translate a
	// filter. Filters are never silently dropped.
	ErrUnsupportedFilter = errors.New("unsupported filter")
)

// UnsupportedFilter builds an ErrUnsupportedFilter naming the collection.
func UnsupportedFilter(collection string, f Filter) error {
	return fmt.Errorf("%w: %T on %s", ErrUnsupportedFilter, f, collection)
}
