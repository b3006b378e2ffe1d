package repo_errors

import "errors"

var (
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when a guarded update matches no row,
	// meaning the row left the expected state since it was read.
	ErrConflict = errors.New("entity is no longer in the expected state")
)
