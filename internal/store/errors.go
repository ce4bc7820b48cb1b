package store

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrAlreadyExists  = errors.New("record already exists")
	// ErrConflict means a concurrent update changed the row between the
	// read and the conditional write. The whole operation must be retried
	// from a fresh read.
	ErrConflict = errors.New("concurrent update conflict")
)
