// Package errors lists every failure the registry can surface to a caller.
// Callers match them with Is; storage failures arrive wrapped in StorageError.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIdentity      = fmt.Errorf("invalid identity")
	ErrUnauthorized         = fmt.Errorf("unauthorized")
	ErrNotAWriter           = fmt.Errorf("address is not an approved writer")
	ErrMessageAlreadyExists = fmt.Errorf("message already exists for this writer")
	ErrNotInstantiated      = fmt.Errorf("registry is not instantiated")
	ErrAlreadyInstantiated  = fmt.Errorf("registry is already instantiated")
	ErrUnknownOperation     = fmt.Errorf("unknown operation")
	ErrInvalidToken         = fmt.Errorf("invalid or expired token")
)

// StorageError carries a failure from the key-value store or the value codec.
// It aborts the current request only; committed state is left as it was.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err for operation op. A nil err stays nil and an error that
// is already a domain sentinel or a StorageError passes through untouched.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) || isDomain(err) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

func isDomain(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidIdentity,
		ErrUnauthorized,
		ErrNotAWriter,
		ErrMessageAlreadyExists,
		ErrNotInstantiated,
		ErrAlreadyInstantiated,
		ErrUnknownOperation,
		ErrInvalidToken,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Is and As forward to the standard library so callers need a single import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }
