package loan

import "errors"

// Business-rule outcomes. These are expected results of ledger operations and
// are returned, never panicked; the delivery layer maps them to status codes.
var (
	ErrInvalidRequest       = errors.New("invalid request: required parameters are missing")
	ErrBookNotFound         = errors.New("book not found")
	ErrAlreadyCheckedOut    = errors.New("book is already checked out")
	ErrNoActiveLoan         = errors.New("no active loan for this book and user")
	ErrRenewalLimitExceeded = errors.New("renewal limit exceeded")
)

// ErrLedgerCorrupted signals more than one open loan for a single book: a
// defect in the ledger, surfaced as a system error rather than a business
// outcome.
var ErrLedgerCorrupted = errors.New("ledger corrupted: multiple open loans for one book")
