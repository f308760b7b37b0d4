package application

import "github.com/sap-portal/backend/internal/domain/shared"

// Event types for the application aggregate
const (
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationStatusChanged = "application.status_changed"
	EventApplicationDeleted       = "application.deleted"
	EventDocumentAttached         = "application.document_attached"
)

// ApplicationSubmittedEvent is raised when a student submits a new or
// renewal application
type ApplicationSubmittedEvent struct {
	shared.BaseDomainEvent
	StudentNumber   string `json:"student_number"`
	Kind            Kind   `json:"kind"`
	PreferredOffice string `json:"preferred_office"`
}

// NewApplicationSubmittedEvent creates a new application submitted event
func NewApplicationSubmittedEvent(app *Application) *ApplicationSubmittedEvent {
	return &ApplicationSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventApplicationSubmitted, "Application", app.ID),
		StudentNumber:   app.StudentNumber,
		Kind:            app.Kind,
		PreferredOffice: app.PreferredOffice,
	}
}

// ApplicationStatusChangedEvent is raised on every accepted status
// transition
type ApplicationStatusChangedEvent struct {
	shared.BaseDomainEvent
	StudentNumber  string `json:"student_number"`
	OldStatus      Status `json:"old_status"`
	NewStatus      Status `json:"new_status"`
	AssignedOffice string `json:"assigned_office,omitempty"`
}

// NewApplicationStatusChangedEvent creates a new status changed event
func NewApplicationStatusChangedEvent(app *Application, oldStatus, newStatus Status) *ApplicationStatusChangedEvent {
	return &ApplicationStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventApplicationStatusChanged, "Application", app.ID),
		StudentNumber:   app.StudentNumber,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
		AssignedOffice:  app.AssignedOffice,
	}
}

// ApplicationDeletedEvent is raised when a director removes an
// application
type ApplicationDeletedEvent struct {
	shared.BaseDomainEvent
	StudentNumber string `json:"student_number"`
	Status        Status `json:"status"`
}

// NewApplicationDeletedEvent creates a new application deleted event
func NewApplicationDeletedEvent(app *Application) *ApplicationDeletedEvent {
	return &ApplicationDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventApplicationDeleted, "Application", app.ID),
		StudentNumber:   app.StudentNumber,
		Status:          app.Status,
	}
}

// DocumentAttachedEvent is raised when a requirement document is attached
// to an application
type DocumentAttachedEvent struct {
	shared.BaseDomainEvent
	DocumentType DocumentType `json:"document_type"`
	StorageKey   string       `json:"storage_key"`
}

// NewDocumentAttachedEvent creates a new document attached event
func NewDocumentAttachedEvent(app *Application, doc *Document) *DocumentAttachedEvent {
	return &DocumentAttachedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventDocumentAttached, "Application", app.ID),
		DocumentType:    doc.Type,
		StorageKey:      doc.StorageKey,
	}
}
