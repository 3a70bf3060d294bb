package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup for a row that does not exist. It is not a
// StorageError: the store answered, the row is simply absent.
var ErrNotFound = errors.New("record not found")

// StorageError signals that the persistence layer could not complete a read
// or write. Callers treat it as non-retryable within the request; handlers
// translate it into a 500 response.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
