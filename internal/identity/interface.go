package identity

import (
	"context"

	"library-circulation/internal/model"
)

// Directory is the read-only source of user identities.
type Directory interface {
	// GetByID returns the user with the given id.
	// Returns ErrUserNotFound when the id does not resolve.
	GetByID(ctx context.Context, id int) (model.User, error)
}
