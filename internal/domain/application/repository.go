package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sap-portal/backend/internal/domain/shared"
)

// Repository defines the persistence interface for applications
type Repository interface {
	shared.Repository[Application]

	// FindByStudentNumber returns the most recent application for a
	// student number
	FindByStudentNumber(ctx context.Context, studentNumber string) (*Application, error)

	// FindByStatus returns applications in the given status
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]Application, error)

	// FindByKind returns applications of the given kind
	FindByKind(ctx context.Context, kind Kind, filter shared.Filter) ([]Application, error)

	// CountByStatus returns the number of applications per status
	CountByStatus(ctx context.Context) (map[Status]int64, error)

	// CountAssignedToOffice returns the number of slot-occupying
	// applications assigned to the named office
	CountAssignedToOffice(ctx context.Context, officeName string) (int64, error)

	// FindInterviewsBetween returns applications with an interview
	// scheduled inside the window
	FindInterviewsBetween(ctx context.Context, from, to time.Time) ([]Application, error)
}

// DocumentRepository defines the persistence interface for requirement
// documents
type DocumentRepository interface {
	// Save persists a document record
	Save(ctx context.Context, doc *Document) error

	// FindByID returns a document by its identifier
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)

	// FindByApplicationID returns all documents attached to an
	// application
	FindByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]Document, error)

	// Delete removes a document record
	Delete(ctx context.Context, id uuid.UUID) error
}
