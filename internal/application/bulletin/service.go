// Package bulletin contains the use-case services for the public
// bulletin board: announcements, reminders, and upcoming dates.
package bulletin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/bulletin"
	"github.com/sap-portal/backend/internal/domain/shared"
)

const boardTimeFormat = "2006-01-02T15:04"

// BulletinService manages the bulletin board. The board itself is
// public; posting and deleting require a staff account.
type BulletinService struct {
	announcementRepo bulletin.AnnouncementRepository
	reminderRepo     bulletin.ReminderRepository
	upcomingRepo     bulletin.UpcomingDateRepository
	logger           *zap.Logger
}

// NewBulletinService creates a new BulletinService
func NewBulletinService(
	announcementRepo bulletin.AnnouncementRepository,
	reminderRepo bulletin.ReminderRepository,
	upcomingRepo bulletin.UpcomingDateRepository,
	logger *zap.Logger,
) *BulletinService {
	return &BulletinService{
		announcementRepo: announcementRepo,
		reminderRepo:     reminderRepo,
		upcomingRepo:     upcomingRepo,
		logger:           logger,
	}
}

// Board returns the combined public bulletin board: visible
// announcements, all reminders, and future calendar entries
func (s *BulletinService) Board(ctx context.Context) (*BoardResponse, error) {
	now := time.Now()

	announcements, err := s.announcementRepo.FindVisible(ctx, now)
	if err != nil {
		return nil, err
	}

	reminders, err := s.reminderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.upcomingRepo.FindUpcoming(ctx, now)
	if err != nil {
		return nil, err
	}

	return &BoardResponse{
		Announcements: ToAnnouncementResponses(announcements),
		Reminders:     ToReminderResponses(reminders),
		UpcomingDates: ToUpcomingDateResponses(upcoming),
	}, nil
}

// CreateAnnouncement posts a new announcement
func (s *BulletinService) CreateAnnouncement(ctx context.Context, postedBy string, req CreateAnnouncementRequest) (*AnnouncementResponse, error) {
	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		t, err := parseBoardTime(req.ExpiresAt)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_EXPIRY", "Expiry must be an ISO date-time")
		}
		expiresAt = &t
	}

	a, err := bulletin.NewAnnouncement(req.Title, req.Body, postedBy, expiresAt)
	if err != nil {
		return nil, err
	}

	if err := s.announcementRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("Announcement posted",
		zap.String("announcement_id", a.ID.String()),
		zap.String("posted_by", postedBy))

	resp := ToAnnouncementResponse(a)
	return &resp, nil
}

// UnpublishAnnouncement hides an announcement from the board
func (s *BulletinService) UnpublishAnnouncement(ctx context.Context, id uuid.UUID) error {
	a, err := s.announcementRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	a.Unpublish()
	return s.announcementRepo.Save(ctx, a)
}

// DeleteAnnouncement removes an announcement
func (s *BulletinService) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	return s.announcementRepo.Delete(ctx, id)
}

// CreateReminder posts a new reminder
func (s *BulletinService) CreateReminder(ctx context.Context, req CreateReminderRequest) (*ReminderResponse, error) {
	var dueAt *time.Time
	if req.DueAt != "" {
		t, err := parseBoardTime(req.DueAt)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date must be an ISO date-time")
		}
		dueAt = &t
	}

	r, err := bulletin.NewReminder(req.Message, bulletin.Priority(req.Priority), dueAt)
	if err != nil {
		return nil, err
	}

	if err := s.reminderRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	resp := ToReminderResponse(r)
	return &resp, nil
}

// DeleteReminder removes a reminder
func (s *BulletinService) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	return s.reminderRepo.Delete(ctx, id)
}

// CreateUpcomingDate posts a calendar entry
func (s *BulletinService) CreateUpcomingDate(ctx context.Context, req CreateUpcomingDateRequest) (*UpcomingDateResponse, error) {
	happens, err := parseBoardTime(req.Happens)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Event date must be an ISO date-time")
	}

	d, err := bulletin.NewUpcomingDate(req.Title, happens, req.Location)
	if err != nil {
		return nil, err
	}

	if err := s.upcomingRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	resp := ToUpcomingDateResponse(d)
	return &resp, nil
}

// DeleteUpcomingDate removes a calendar entry
func (s *BulletinService) DeleteUpcomingDate(ctx context.Context, id uuid.UUID) error {
	return s.upcomingRepo.Delete(ctx, id)
}

// parseBoardTime accepts the datetime-local format sent by board forms
// as well as full RFC 3339 and bare dates
func parseBoardTime(raw string) (time.Time, error) {
	for _, layout := range []string{boardTimeFormat, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, shared.ErrInvalidInput
}
