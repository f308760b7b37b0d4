package shared

import "gorm.io/gorm"

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	AddDomainEvent(event DomainEvent)
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot provides common fields for aggregate roots. The
// version column backs optimistic locking: repositories bump it once
// per successful save and compare against the version the aggregate
// carried when it was loaded.
type BaseAggregateRoot struct {
	BaseEntity
	Version       int           `gorm:"not null;default:1"`
	loadedVersion int           `gorm:"-"`
	domainEvents  []DomainEvent `gorm:"-"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// AfterFind records the version the row was loaded with so a later
// save can detect concurrent writers
func (a *BaseAggregateRoot) AfterFind(*gorm.DB) error {
	a.loadedVersion = a.Version
	return nil
}

// Persisted reports whether the aggregate has been stored or loaded
func (a *BaseAggregateRoot) Persisted() bool {
	return a.loadedVersion > 0
}

// LoadedVersion returns the version the aggregate was loaded with
func (a *BaseAggregateRoot) LoadedVersion() int {
	return a.loadedVersion
}

// MarkPersisted syncs the loaded version after a successful save
func (a *BaseAggregateRoot) MarkPersisted() {
	a.loadedVersion = a.Version
}

// AddDomainEvent adds a domain event to be published
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns all pending domain events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents clears the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		Version:      1,
		domainEvents: make([]DomainEvent, 0),
	}
}
