package identity

import "errors"

var (
	// ErrUserNotFound means the id has no entry in the directory.
	ErrUserNotFound = errors.New("user not found in directory")

	// ErrSourceUnavailable means the backing directory source could not be read.
	ErrSourceUnavailable = errors.New("identity source unavailable")
)
