package catalog

import "errors"

var (
	// ErrBookNotFound means the id or ISBN does not resolve to a catalog entry.
	ErrBookNotFound = errors.New("book not found in catalog")

	// ErrSourceUnavailable means the backing catalog source could not be read.
	// This is a system failure, not a business outcome.
	ErrSourceUnavailable = errors.New("catalog source unavailable")
)
