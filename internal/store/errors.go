package store

import (
	"errors"
	"fmt"
)

// ErrEmptyName is returned (wrapped in a ValidationError) when an item name
// is blank after trimming.
var ErrEmptyName = errors.New("item name is empty")

// ValidationError rejects an add. The collection is left unchanged.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// PersistenceError is a failed read or write against the slot.
// It is logged and recorded but never returned from a mutation.
type PersistenceError struct {
	Op  string // "load" | "save"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
