package repository

import (
	"context"

	"library-circulation/internal/model"
)

// Repository is the circulation ledger store. Records are append-mostly:
// CreateLoan is the only way a record comes into existence, CloseLoan and
// RenewLoan mutate existing records in place, nothing ever deletes one.
//
// Each mutation is atomic with respect to the one-open-loan-per-book
// invariant: the availability check and the write happen under the same
// lock (or transaction), so two concurrent CreateLoan calls for one book
// can never both succeed.
type Repository interface {
	// CreateLoan opens a loan. Fails with ErrOpenLoanExists when the book
	// already has an open record.
	CreateLoan(ctx context.Context, opt CreateLoanOptions) (model.LoanRecord, error)

	// CloseLoan marks the open (book, user) record returned.
	// Fails with ErrNoOpenLoan when no such record exists.
	CloseLoan(ctx context.Context, opt CloseLoanOptions) (model.LoanRecord, error)

	// RenewLoan extends the open (book, user) record's due date by ExtendBy,
	// relative to the current due date. Fails with ErrNoOpenLoan or, when the
	// record already reached MaxRenewals, with ErrRenewalLimit — in which
	// case the record is left untouched.
	RenewLoan(ctx context.Context, opt RenewLoanOptions) (model.LoanRecord, error)

	// ListLoans returns records in insertion order as a copy-on-read
	// snapshot; later mutations are not visible through it. A zero BookID
	// means the full ledger.
	ListLoans(ctx context.Context, opt ListLoansOptions) ([]model.LoanRecord, error)

	// GetOpenLoan returns the open record for a book, if any. Finding more
	// than one open record is reported as ErrCorrupted, never resolved by
	// picking one.
	GetOpenLoan(ctx context.Context, bookID int) (model.LoanRecord, bool, error)
}
