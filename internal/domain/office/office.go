package office

import (
	"strings"
	"time"

	"github.com/sap-portal/backend/internal/domain/shared"
)

// DefaultTotalSlots is the slot count assigned to an office when the
// registry entry does not specify one.
const DefaultTotalSlots = 3

// Office is an aggregate root representing a campus office that hosts
// student assistants. Capacity is derived, not stored: the registry only
// records total slots, and the filled count comes from the applications
// table at read time.
type Office struct {
	shared.BaseAggregateRoot
	Name        string  `gorm:"type:varchar(200);not null;uniqueIndex"`
	Building    string  `gorm:"type:varchar(200)"`
	Room        string  `gorm:"type:varchar(100)"`
	OfficeHours string  `gorm:"type:varchar(100)"`
	HeadName    string  `gorm:"type:varchar(150)"`
	TotalSlots  int     `gorm:"not null;default:3"`
	Latitude    float64 `gorm:"type:decimal(10,7)"`
	Longitude   float64 `gorm:"type:decimal(10,7)"`
	Icon        string  `gorm:"type:varchar(100)"`
	Description string  `gorm:"type:text"`
	Active      bool    `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Office) TableName() string {
	return "offices"
}

// NewOffice creates a new office registry entry
func NewOffice(name, building, room string, totalSlots int) (*Office, error) {
	if err := validateOfficeName(name); err != nil {
		return nil, err
	}
	if totalSlots < 0 {
		return nil, shared.NewDomainError("INVALID_TOTAL_SLOTS", "Total slots cannot be negative")
	}
	if totalSlots == 0 {
		totalSlots = DefaultTotalSlots
	}

	o := &Office{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Building:          building,
		Room:              room,
		TotalSlots:        totalSlots,
		Active:            true,
	}

	o.AddDomainEvent(NewOfficeCreatedEvent(o))

	return o, nil
}

// UpdateDetails updates the descriptive fields of the office
func (o *Office) UpdateDetails(building, room, officeHours, headName, icon, description string) {
	o.Building = building
	o.Room = room
	o.OfficeHours = officeHours
	o.HeadName = headName
	o.Icon = icon
	o.Description = description
	o.UpdatedAt = time.Now()
}

// UpdateLocation updates the map coordinates
func (o *Office) UpdateLocation(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return shared.NewDomainError("INVALID_LATITUDE", "Latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return shared.NewDomainError("INVALID_LONGITUDE", "Longitude must be between -180 and 180")
	}
	o.Latitude = latitude
	o.Longitude = longitude
	o.UpdatedAt = time.Now()
	return nil
}

// UpdateTotalSlots changes the slot count for the office
func (o *Office) UpdateTotalSlots(totalSlots int) error {
	if totalSlots < 0 {
		return shared.NewDomainError("INVALID_TOTAL_SLOTS", "Total slots cannot be negative")
	}
	o.TotalSlots = totalSlots
	o.UpdatedAt = time.Now()
	o.AddDomainEvent(NewOfficeSlotsChangedEvent(o))
	return nil
}

// Deactivate removes the office from the selectable registry without
// deleting it
func (o *Office) Deactivate() {
	if !o.Active {
		return
	}
	o.Active = false
	o.UpdatedAt = time.Now()
}

// Reactivate returns the office to the selectable registry
func (o *Office) Reactivate() {
	if o.Active {
		return
	}
	o.Active = true
	o.UpdatedAt = time.Now()
}

// Capacity builds the capacity report for the office given the current
// filled count
func (o *Office) Capacity(filled int64) CapacityReport {
	return NewCapacityReport(o.Name, o.TotalSlots, filled)
}

func validateOfficeName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_OFFICE_NAME", "Office name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_OFFICE_NAME", "Office name cannot exceed 200 characters")
	}
	return nil
}
