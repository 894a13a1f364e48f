package repository

import "errors"

// Outcomes of atomic ledger mutations.
var (
	ErrOpenLoanExists = errors.New("an open loan already exists for this book")
	ErrNoOpenLoan     = errors.New("no open loan for this book and user")
	ErrRenewalLimit   = errors.New("loan already renewed the maximum number of times")
	ErrCorrupted      = errors.New("more than one open loan found for one book")
)

// Storage failures (driver-level, distinct from the outcomes above).
var (
	ErrFailedToInsert = errors.New("failed to insert loan record")
	ErrFailedToGet    = errors.New("failed to get loan record")
	ErrFailedToList   = errors.New("failed to list loan records")
	ErrFailedToUpdate = errors.New("failed to update loan record")
)
