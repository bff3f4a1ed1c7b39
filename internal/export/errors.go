package export

import "errors"

var (
	// ErrEngineUnavailable indicates the configured engine cannot run here.
	ErrEngineUnavailable = errors.New("export engine unavailable")

	// ErrInvalidOptions indicates export options failed validation.
	ErrInvalidOptions = errors.New("invalid export options")

	// ErrNotFound indicates an archived export was not found.
	ErrNotFound = errors.New("not found")
)
