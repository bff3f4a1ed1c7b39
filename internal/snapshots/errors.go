package snapshots

import "errors"

var (
	// ErrNotFound indicates no snapshot is stored under the key.
	ErrNotFound = errors.New("snapshot not found")

	// ErrInvalidInput indicates a missing owner or key.
	ErrInvalidInput = errors.New("invalid input")
)
