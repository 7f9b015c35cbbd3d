package model

import "errors"

var (
	// ErrNotFound is returned by stores when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned by stores when the identity key is taken.
	ErrConflict = errors.New("already exists")

	// ErrUnsupported is returned by stores that cannot serve an operation,
	// e.g. identifier lookups on the email-keyed backend.
	ErrUnsupported = errors.New("unsupported operation")
)
