package repository

import "time"

// CreateLoanOptions holds parameters for opening a loan. The caller computes
// the dates so that lending policy stays out of the store.
type CreateLoanOptions struct {
	BookID       int
	UserID       int
	CheckoutDate time.Time
	DueDate      time.Time
}

// CloseLoanOptions holds parameters for returning a book.
type CloseLoanOptions struct {
	BookID     int
	UserID     int
	ReturnedAt time.Time
}

// RenewLoanOptions holds parameters for renewing a loan.
type RenewLoanOptions struct {
	BookID      int
	UserID      int
	ExtendBy    time.Duration
	MaxRenewals int
}

// ListLoansOptions filters ledger reads. Zero BookID means no filter.
type ListLoansOptions struct {
	BookID int
}
