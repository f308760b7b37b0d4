package identity

import (
	"context"

	"github.com/sap-portal/backend/internal/domain/shared"
)

// Repository defines the persistence interface for users
type Repository interface {
	shared.Repository[User]

	// FindByUsername returns the user with the given username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername reports whether a user with the username exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
