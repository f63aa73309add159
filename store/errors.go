package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the referenced id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOwnerNotFound means a diary lookup referenced a user that
	// does not exist. Distinct from an existing owner with zero
	// entries, which is an empty result, not an error.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrUnavailable means the backing store is unreachable or the
	// schema could not be synced. Callers may retry after backoff.
	ErrUnavailable = errors.New("store unavailable")
)

// ValidationError reports missing or malformed required input. Match
// with errors.As to recover the field list.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
