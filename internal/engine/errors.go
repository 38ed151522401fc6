package engine

import "errors"

var (
	// ErrNotFound indicates the descriptor file does not exist.
	ErrNotFound = errors.New("workspace descriptor not found")

	// ErrNoWorkspace indicates no descriptor could be discovered from the
	// working directory.
	ErrNoWorkspace = errors.New("no workspace descriptor in scope")

	// ErrConcurrentModification indicates the descriptor changed on disk
	// between read and write.
	ErrConcurrentModification = errors.New("descriptor modified concurrently")

	// ErrPersistence indicates the descriptor could not be written.
	ErrPersistence = errors.New("failed to persist descriptor")
)
