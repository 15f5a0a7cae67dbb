package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the authoritative path. Only these and StoreError ever
// reach the caller; side-effect failures are logged and swallowed.
var (
	// ErrNotFound indicates the requested content does not exist or is deleted.
	ErrNotFound = errors.New("content not found")
	// ErrForbidden indicates the actor is not authorized for the operation.
	ErrForbidden = errors.New("forbidden")
)

// StoreError wraps a failure on the authoritative store path. It always
// surfaces to the caller as a generic failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError for operation op.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// DependencyError records a best-effort side-effect failure. It is logged with
// enough context to diagnose drift between the store, cache and index, and is
// never returned to the caller.
type DependencyError struct {
	System    string
	Op        string
	ContentID string
	Err       error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %s failed for content %s: %v", e.System, e.Op, e.ContentID, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
