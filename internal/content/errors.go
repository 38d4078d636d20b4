package content

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a get-by-id or get-by-slug matched no record.
// It is an expected outcome for callers to branch on, not a failure.
var ErrNotFound = errors.New("content: not found")

// StoreError wraps a backend transport failure on a one-shot repository
// operation. It propagates to the immediate caller; no retry happens at
// this layer.
type StoreError struct {
	Op         string // "read" or "write"
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("content: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func readErr(collection string, err error) error {
	return &StoreError{Op: "read", Collection: collection, Err: err}
}

func writeErr(collection string, err error) error {
	return &StoreError{Op: "write", Collection: collection, Err: err}
}
