package office

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffice(t *testing.T) {
	o, err := NewOffice("Registrar", "Admin Building", "201", 4)
	require.NoError(t, err)

	assert.Equal(t, "Registrar", o.Name)
	assert.Equal(t, 4, o.TotalSlots)
	assert.True(t, o.Active)
	assert.Equal(t, 1, o.Version)
	assert.Len(t, o.GetDomainEvents(), 1)
	assert.Equal(t, EventOfficeCreated, o.GetDomainEvents()[0].EventType())
}

func TestNewOfficeDefaultsSlots(t *testing.T) {
	o, err := NewOffice("Library", "Main Building", "G-01", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTotalSlots, o.TotalSlots)
}

func TestNewOfficeValidation(t *testing.T) {
	_, err := NewOffice("", "Admin Building", "201", 3)
	assert.Error(t, err)

	_, err = NewOffice("   ", "Admin Building", "201", 3)
	assert.Error(t, err)

	_, err = NewOffice("Registrar", "Admin Building", "201", -1)
	assert.Error(t, err)
}

func TestUpdateLocation(t *testing.T) {
	o, err := NewOffice("Registrar", "Admin Building", "201", 3)
	require.NoError(t, err)

	require.NoError(t, o.UpdateLocation(14.5995, 120.9842))
	assert.Equal(t, 14.5995, o.Latitude)
	assert.Equal(t, 120.9842, o.Longitude)
	assert.Equal(t, 1, o.Version)

	assert.Error(t, o.UpdateLocation(91, 0))
	assert.Error(t, o.UpdateLocation(0, -181))
}

func TestUpdateTotalSlots(t *testing.T) {
	o, err := NewOffice("Registrar", "Admin Building", "201", 3)
	require.NoError(t, err)
	o.ClearDomainEvents()

	require.NoError(t, o.UpdateTotalSlots(5))
	assert.Equal(t, 5, o.TotalSlots)
	require.Len(t, o.GetDomainEvents(), 1)
	assert.Equal(t, EventOfficeSlotsChanged, o.GetDomainEvents()[0].EventType())

	assert.Error(t, o.UpdateTotalSlots(-1))
}

func TestDeactivateReactivate(t *testing.T) {
	o, err := NewOffice("Registrar", "Admin Building", "201", 3)
	require.NoError(t, err)

	o.Deactivate()
	assert.False(t, o.Active)
	version := o.Version

	// Deactivating twice is a no-op
	o.Deactivate()
	assert.Equal(t, version, o.Version)

	o.Reactivate()
	assert.True(t, o.Active)
}

func TestOfficeCapacity(t *testing.T) {
	o, err := NewOffice("Registrar", "Admin Building", "201", 3)
	require.NoError(t, err)

	report := o.Capacity(2)
	assert.Equal(t, "Registrar", report.OfficeName)
	assert.Equal(t, 1, report.AvailableSlots)
	assert.Equal(t, AvailabilityLimited, report.Availability)
}
