package bulletin

import (
	"strings"
	"time"

	"github.com/sap-portal/backend/internal/domain/shared"
)

// Priority grades a reminder by urgency
type Priority string

const (
	PriorityInfo    Priority = "info"
	PriorityWarning Priority = "warning"
	PriorityUrgent  Priority = "urgent"
)

// IsValid reports whether the priority is a member of the enumeration
func (p Priority) IsValid() bool {
	return p == PriorityInfo || p == PriorityWarning || p == PriorityUrgent
}

// Announcement is a public bulletin-board post shown on the portal
// landing page
type Announcement struct {
	shared.BaseAggregateRoot
	Title       string     `gorm:"type:varchar(200);not null"`
	Body        string     `gorm:"type:text;not null"`
	PostedBy    string     `gorm:"type:varchar(150)"`
	Published   bool       `gorm:"not null;default:true"`
	PublishedAt time.Time  `gorm:"not null;index"`
	ExpiresAt   *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (Announcement) TableName() string {
	return "announcements"
}

// NewAnnouncement creates a published announcement
func NewAnnouncement(title, body, postedBy string, expiresAt *time.Time) (*Announcement, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Announcement title cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Announcement body cannot be empty")
	}

	return &Announcement{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Body:              body,
		PostedBy:          postedBy,
		Published:         true,
		PublishedAt:       time.Now(),
		ExpiresAt:         expiresAt,
	}, nil
}

// IsVisible reports whether the announcement should appear on the board
// at the given instant
func (a *Announcement) IsVisible(at time.Time) bool {
	if !a.Published {
		return false
	}
	if a.ExpiresAt != nil && at.After(*a.ExpiresAt) {
		return false
	}
	return true
}

// Unpublish hides the announcement from the board
func (a *Announcement) Unpublish() {
	if !a.Published {
		return
	}
	a.Published = false
	a.UpdatedAt = time.Now()
}

// Reminder is a short notice on the bulletin board, graded by priority
type Reminder struct {
	shared.BaseAggregateRoot
	Message  string   `gorm:"type:varchar(500);not null"`
	Priority Priority `gorm:"type:varchar(20);not null;default:'info'"`
	DueAt    *time.Time
}

// TableName returns the table name for GORM
func (Reminder) TableName() string {
	return "reminders"
}

// NewReminder creates a bulletin reminder
func NewReminder(message string, priority Priority, dueAt *time.Time) (*Reminder, error) {
	if strings.TrimSpace(message) == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Reminder message cannot be empty")
	}
	if priority == "" {
		priority = PriorityInfo
	}
	if !priority.IsValid() {
		return nil, shared.NewDomainError("INVALID_PRIORITY", "Priority must be info, warning, or urgent")
	}

	return &Reminder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Message:           message,
		Priority:          priority,
		DueAt:             dueAt,
	}, nil
}

// UpcomingDate is a calendar entry on the bulletin board, such as an
// orientation or a deadline
type UpcomingDate struct {
	shared.BaseAggregateRoot
	Title    string    `gorm:"type:varchar(200);not null"`
	Happens  time.Time `gorm:"not null;index"`
	Location string    `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (UpcomingDate) TableName() string {
	return "upcoming_dates"
}

// NewUpcomingDate creates a calendar entry
func NewUpcomingDate(title string, happens time.Time, location string) (*UpcomingDate, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Event title cannot be empty")
	}
	if happens.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Event date cannot be empty")
	}

	return &UpcomingDate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Happens:           happens,
		Location:          location,
	}, nil
}
