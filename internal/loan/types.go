package loan

import "library-circulation/internal/model"

// Lending policy.
const (
	// LoanPeriodDays is the initial loan period granted at checkout.
	LoanPeriodDays = 20

	// RenewalExtensionDays is added to the current due date per renewal,
	// not to the renewal time, so renewing early never shortens a loan.
	RenewalExtensionDays = 20

	// MaxRenewals caps renewals per loan. The attempt past the cap is
	// rejected, never clamped.
	MaxRenewals = 5
)

// TransactionInput identifies a book/user pair for a ledger mutation.
type TransactionInput struct {
	BookISBN string
	UserID   int
}

// TransactionOutput carries the loan record a mutation created or changed.
type TransactionOutput struct {
	Record model.LoanRecord
}

// Holder is the current borrower of a book. Resolved is false when the loan
// record names a user the identity directory cannot find; the loan is still
// reported rather than dropped.
type Holder struct {
	UserID   int
	Name     string
	Resolved bool
}

// BookStatus is the read-only join of a catalog book, its full loan history
// and its current holder (nil when the book is on the shelf). It is built by
// composition, assembled per query and never persisted.
type BookStatus struct {
	Book    model.Book
	History []model.LoanRecord
	Holder  *Holder
}
