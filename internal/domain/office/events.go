package office

import "github.com/sap-portal/backend/internal/domain/shared"

// Event types for the office aggregate
const (
	EventOfficeCreated      = "office.created"
	EventOfficeSlotsChanged = "office.slots_changed"
)

// OfficeCreatedEvent is raised when a registry entry is created
type OfficeCreatedEvent struct {
	shared.BaseDomainEvent
	Name       string `json:"name"`
	TotalSlots int    `json:"total_slots"`
}

// NewOfficeCreatedEvent creates a new office created event
func NewOfficeCreatedEvent(o *Office) *OfficeCreatedEvent {
	return &OfficeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOfficeCreated, "Office", o.ID),
		Name:            o.Name,
		TotalSlots:      o.TotalSlots,
	}
}

// OfficeSlotsChangedEvent is raised when the slot count changes
type OfficeSlotsChangedEvent struct {
	shared.BaseDomainEvent
	Name       string `json:"name"`
	TotalSlots int    `json:"total_slots"`
}

// NewOfficeSlotsChangedEvent creates a new slots changed event
func NewOfficeSlotsChangedEvent(o *Office) *OfficeSlotsChangedEvent {
	return &OfficeSlotsChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOfficeSlotsChanged, "Office", o.ID),
		Name:            o.Name,
		TotalSlots:      o.TotalSlots,
	}
}
