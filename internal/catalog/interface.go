package catalog

import (
	"context"

	"library-circulation/internal/model"
)

// Provider is the read-only source of catalog data. Implementations must be
// safe for concurrent use; the core never mutates books through it.
type Provider interface {
	// GetAll returns every book in catalog order.
	GetAll(ctx context.Context) ([]model.Book, error)

	// GetByISBN returns the book with the given ISBN.
	// Returns ErrBookNotFound when the ISBN does not resolve.
	GetByISBN(ctx context.Context, isbn string) (model.Book, error)

	// GetByID returns the book with the given id.
	// Returns ErrBookNotFound when the id does not resolve.
	GetByID(ctx context.Context, id int) (model.Book, error)
}
