package model

import "time"

// LoanRecord is one loan episode of a book. Records are created by checkout,
// mutated in place by return and renew, and never deleted: the ledger is
// permanent history.
//
// IDs are assigned by the ledger repository from a monotonic counter,
// atomically with insertion.
type LoanRecord struct {
	ID               int64
	BookID           int
	UserID           int
	CheckoutDate     time.Time
	DueDate          time.Time
	ActualReturnDate *time.Time // nil until the book is returned
	RenewalCount     int
	Returned         bool
}

// Open reports whether the loan is still outstanding.
func (r LoanRecord) Open() bool {
	return !r.Returned
}
