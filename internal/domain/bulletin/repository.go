package bulletin

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AnnouncementRepository defines the persistence interface for
// announcements
type AnnouncementRepository interface {
	Save(ctx context.Context, a *Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*Announcement, error)
	FindVisible(ctx context.Context, at time.Time) ([]Announcement, error)
	FindAll(ctx context.Context) ([]Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReminderRepository defines the persistence interface for reminders
type ReminderRepository interface {
	Save(ctx context.Context, r *Reminder) error
	FindByID(ctx context.Context, id uuid.UUID) (*Reminder, error)
	FindAll(ctx context.Context) ([]Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpcomingDateRepository defines the persistence interface for calendar
// entries
type UpcomingDateRepository interface {
	Save(ctx context.Context, d *UpcomingDate) error
	FindByID(ctx context.Context, id uuid.UUID) (*UpcomingDate, error)
	FindUpcoming(ctx context.Context, after time.Time) ([]UpcomingDate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
