package builder

import "errors"

var (
	// ErrSessionNotFound indicates the session does not exist for the owner.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
