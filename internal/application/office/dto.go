package office

import (
	"time"

	"github.com/google/uuid"

	"github.com/sap-portal/backend/internal/domain/office"
)

// CreateOfficeRequest registers a new office in the registry
type CreateOfficeRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Building    string  `json:"building" binding:"omitempty,max=200"`
	Room        string  `json:"room" binding:"omitempty,max=100"`
	OfficeHours string  `json:"office_hours" binding:"omitempty,max=100"`
	HeadName    string  `json:"head_name" binding:"omitempty,max=150"`
	TotalSlots  int     `json:"total_slots" binding:"omitempty,min=0,max=100"`
	Latitude    float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Icon        string  `json:"icon" binding:"omitempty,max=100"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
}

// UpdateOfficeRequest updates an existing registry entry. Slots and
// coordinates are pointers so zero values can be distinguished from
// absent fields.
type UpdateOfficeRequest struct {
	Building    string   `json:"building" binding:"omitempty,max=200"`
	Room        string   `json:"room" binding:"omitempty,max=100"`
	OfficeHours string   `json:"office_hours" binding:"omitempty,max=100"`
	HeadName    string   `json:"head_name" binding:"omitempty,max=150"`
	TotalSlots  *int     `json:"total_slots" binding:"omitempty,min=0,max=100"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Icon        string   `json:"icon" binding:"omitempty,max=100"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
}

// OfficeResponse is the full view of a registry entry
type OfficeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Building    string    `json:"building,omitempty"`
	Room        string    `json:"room,omitempty"`
	OfficeHours string    `json:"office_hours,omitempty"`
	HeadName    string    `json:"head_name,omitempty"`
	TotalSlots  int       `json:"total_slots"`
	Latitude    float64   `json:"latitude,omitempty"`
	Longitude   float64   `json:"longitude,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OfficeCapacityResponse pairs a registry entry with its derived
// capacity report
type OfficeCapacityResponse struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Building       string              `json:"building,omitempty"`
	Room           string              `json:"room,omitempty"`
	OfficeHours    string              `json:"office_hours,omitempty"`
	HeadName       string              `json:"head_name,omitempty"`
	Icon           string              `json:"icon,omitempty"`
	Description    string              `json:"description,omitempty"`
	Latitude       float64             `json:"latitude,omitempty"`
	Longitude      float64             `json:"longitude,omitempty"`
	TotalSlots     int                 `json:"total_slots"`
	FilledSlots    int                 `json:"filled_slots"`
	AvailableSlots int                 `json:"available_slots"`
	Availability   office.Availability `json:"availability"`
}

// ToOfficeResponse converts a domain office to its response
func ToOfficeResponse(o *office.Office) OfficeResponse {
	return OfficeResponse{
		ID:          o.ID,
		Name:        o.Name,
		Building:    o.Building,
		Room:        o.Room,
		OfficeHours: o.OfficeHours,
		HeadName:    o.HeadName,
		TotalSlots:  o.TotalSlots,
		Latitude:    o.Latitude,
		Longitude:   o.Longitude,
		Icon:        o.Icon,
		Description: o.Description,
		Active:      o.Active,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToOfficeResponses converts a slice of domain offices
func ToOfficeResponses(offices []office.Office) []OfficeResponse {
	responses := make([]OfficeResponse, len(offices))
	for i := range offices {
		responses[i] = ToOfficeResponse(&offices[i])
	}
	return responses
}

// ToOfficeCapacityResponse combines a registry entry with its capacity
// report
func ToOfficeCapacityResponse(o *office.Office, report office.CapacityReport) OfficeCapacityResponse {
	return OfficeCapacityResponse{
		ID:             o.ID,
		Name:           o.Name,
		Building:       o.Building,
		Room:           o.Room,
		OfficeHours:    o.OfficeHours,
		HeadName:       o.HeadName,
		Icon:           o.Icon,
		Description:    o.Description,
		Latitude:       o.Latitude,
		Longitude:      o.Longitude,
		TotalSlots:     report.TotalSlots,
		FilledSlots:    report.FilledSlots,
		AvailableSlots: report.AvailableSlots,
		Availability:   report.Availability,
	}
}
