package office

// Availability classifies how much room an office has left
type Availability string

const (
	AvailabilityOpen    Availability = "open"
	AvailabilityLimited Availability = "limited"
	AvailabilityFull    Availability = "full"
)

// CapacityReport is the derived capacity view for one office
type CapacityReport struct {
	OfficeName     string       `json:"office_name"`
	TotalSlots     int          `json:"total_slots"`
	FilledSlots    int          `json:"filled_slots"`
	AvailableSlots int          `json:"available_slots"`
	Availability   Availability `json:"availability"`
}

// NewCapacityReport derives the capacity report from the slot count and
// the number of slot-occupying applications. Available slots never go
// negative even when staff overfill an office. A single-slot office is
// never "limited": it is open until its one slot fills.
func NewCapacityReport(officeName string, totalSlots int, filled int64) CapacityReport {
	filledSlots := int(filled)
	available := totalSlots - filledSlots
	if available < 0 {
		available = 0
	}

	availability := AvailabilityOpen
	switch {
	case filledSlots >= totalSlots:
		availability = AvailabilityFull
	case available <= 1 && totalSlots > 1:
		availability = AvailabilityLimited
	}

	return CapacityReport{
		OfficeName:     officeName,
		TotalSlots:     totalSlots,
		FilledSlots:    filledSlots,
		AvailableSlots: available,
		Availability:   availability,
	}
}

// HasRoom reports whether at least one slot is unfilled
func (r CapacityReport) HasRoom() bool {
	return r.Availability != AvailabilityFull
}
