package repository

import "errors"

var (
	// ErrNotFound covers both absent rows and rows owned by another user.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate row")
)
