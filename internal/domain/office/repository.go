package office

import (
	"context"

	"github.com/sap-portal/backend/internal/domain/shared"
)

// Repository defines the persistence interface for offices
type Repository interface {
	shared.Repository[Office]

	// FindByName returns the office with the given registry name
	FindByName(ctx context.Context, name string) (*Office, error)

	// FindActive returns all active offices
	FindActive(ctx context.Context) ([]Office, error)

	// ExistsByName reports whether an office with the name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}
