package service

import (
	"errors"
	"fmt"
)

// Event interpretation outcomes
var (
	// ErrEventIgnored means the event is not a type this service acts on. It is not a failure.
	ErrEventIgnored          = errors.New("event ignored")
	ErrMalformedPayload      = errors.New("invalid JSON")
	ErrMissingRequiredFields = errors.New("missing required user data")
)

// Storage operations reported by StorageError
const (
	OpAcquire = "acquire"
	OpUpsert  = "upsert"
)

// StorageError wraps any failure of the storage backend during reconciliation
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
