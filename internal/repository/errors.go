package repository

import "errors"

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrNotFound = errors.New("not found")
	// ErrNotReady means no corpus has been published yet.
	ErrNotReady = errors.New("corpus not loaded")
	ErrConflict = errors.New("conflict")
)
