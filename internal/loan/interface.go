package loan

import (
	"context"

	"library-circulation/internal/model"
)

// UseCase is the business logic interface for the circulation domain.
type UseCase interface {
	// Checkout opens a loan for the book with the given ISBN. At most one
	// open loan may exist per book at any time.
	Checkout(ctx context.Context, input TransactionInput) (TransactionOutput, error)

	// Return closes the open loan held by the given user on the given book.
	Return(ctx context.Context, input TransactionInput) (TransactionOutput, error)

	// Renew extends the open loan's due date by one renewal period, up to
	// MaxRenewals times.
	Renew(ctx context.Context, input TransactionInput) (TransactionOutput, error)

	// ListBooks returns the full catalog.
	ListBooks(ctx context.Context) ([]model.Book, error)

	// History returns the complete ledger in insertion order.
	History(ctx context.Context) ([]model.LoanRecord, error)

	// AllWithStatus returns one BookStatus per catalog book, in catalog
	// order, joining loan history and the current holder's identity.
	AllWithStatus(ctx context.Context) ([]BookStatus, error)
}
