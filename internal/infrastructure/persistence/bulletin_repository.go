package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sap-portal/backend/internal/domain/bulletin"
	"github.com/sap-portal/backend/internal/domain/shared"
)

// GormAnnouncementRepository implements bulletin.AnnouncementRepository using GORM
type GormAnnouncementRepository struct {
	db *gorm.DB
}

// NewGormAnnouncementRepository creates a new GormAnnouncementRepository
func NewGormAnnouncementRepository(db *gorm.DB) *GormAnnouncementRepository {
	return &GormAnnouncementRepository{db: db}
}

// Save creates or updates an announcement
func (r *GormAnnouncementRepository) Save(ctx context.Context, a *bulletin.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// FindByID finds an announcement by its ID
func (r *GormAnnouncementRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulletin.Announcement, error) {
	var a bulletin.Announcement
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindVisible returns published, unexpired announcements newest first
func (r *GormAnnouncementRepository) FindVisible(ctx context.Context, at time.Time) ([]bulletin.Announcement, error) {
	var announcements []bulletin.Announcement
	if err := r.db.WithContext(ctx).
		Where("published = ? AND (expires_at IS NULL OR expires_at > ?)", true, at).
		Order("published_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// FindAll returns every announcement newest first
func (r *GormAnnouncementRepository) FindAll(ctx context.Context) ([]bulletin.Announcement, error) {
	var announcements []bulletin.Announcement
	if err := r.db.WithContext(ctx).
		Order("published_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// Delete removes an announcement
func (r *GormAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&bulletin.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormReminderRepository implements bulletin.ReminderRepository using GORM
type GormReminderRepository struct {
	db *gorm.DB
}

// NewGormReminderRepository creates a new GormReminderRepository
func NewGormReminderRepository(db *gorm.DB) *GormReminderRepository {
	return &GormReminderRepository{db: db}
}

// Save creates or updates a reminder
func (r *GormReminderRepository) Save(ctx context.Context, reminder *bulletin.Reminder) error {
	return r.db.WithContext(ctx).Save(reminder).Error
}

// FindByID finds a reminder by its ID
func (r *GormReminderRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulletin.Reminder, error) {
	var reminder bulletin.Reminder
	if err := r.db.WithContext(ctx).First(&reminder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

// FindAll returns all reminders, most urgent first then newest
func (r *GormReminderRepository) FindAll(ctx context.Context) ([]bulletin.Reminder, error) {
	var reminders []bulletin.Reminder
	if err := r.db.WithContext(ctx).
		Order("CASE priority WHEN 'urgent' THEN 0 WHEN 'warning' THEN 1 ELSE 2 END, created_at DESC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// Delete removes a reminder
func (r *GormReminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&bulletin.Reminder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormUpcomingDateRepository implements bulletin.UpcomingDateRepository using GORM
type GormUpcomingDateRepository struct {
	db *gorm.DB
}

// NewGormUpcomingDateRepository creates a new GormUpcomingDateRepository
func NewGormUpcomingDateRepository(db *gorm.DB) *GormUpcomingDateRepository {
	return &GormUpcomingDateRepository{db: db}
}

// Save creates or updates a calendar entry
func (r *GormUpcomingDateRepository) Save(ctx context.Context, d *bulletin.UpcomingDate) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// FindByID finds a calendar entry by its ID
func (r *GormUpcomingDateRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulletin.UpcomingDate, error) {
	var d bulletin.UpcomingDate
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindUpcoming returns calendar entries after the given instant, soonest
// first
func (r *GormUpcomingDateRepository) FindUpcoming(ctx context.Context, after time.Time) ([]bulletin.UpcomingDate, error) {
	var dates []bulletin.UpcomingDate
	if err := r.db.WithContext(ctx).
		Where("happens > ?", after).
		Order("happens ASC").
		Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

// Delete removes a calendar entry
func (r *GormUpcomingDateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&bulletin.UpcomingDate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure the implementations satisfy the domain interfaces
var (
	_ bulletin.AnnouncementRepository = (*GormAnnouncementRepository)(nil)
	_ bulletin.ReminderRepository     = (*GormReminderRepository)(nil)
	_ bulletin.UpcomingDateRepository = (*GormUpcomingDateRepository)(nil)
)
