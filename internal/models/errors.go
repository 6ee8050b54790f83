package models

import (
	"errors"
	"fmt"
)

// StorageError wraps any failure of the underlying medium (sqlite file,
// platform keyring). A missing key or id is never reported as a StorageError.
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

// NewStorageError wraps err for the named operation. Returns nil for a nil err.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether any error in err's chain is a *StorageError
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
