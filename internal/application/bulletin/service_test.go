package bulletin

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/bulletin"
	"github.com/sap-portal/backend/internal/domain/shared"
)

// MockAnnouncementRepository is a mock implementation of
// bulletin.AnnouncementRepository
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Save(ctx context.Context, a *bulletin.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulletin.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bulletin.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) FindVisible(ctx context.Context, at time.Time) ([]bulletin.Announcement, error) {
	args := m.Called(ctx, at)
	return args.Get(0).([]bulletin.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) FindAll(ctx context.Context) ([]bulletin.Announcement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]bulletin.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUpcomingDateRepository is a mock implementation of
// bulletin.UpcomingDateRepository
type MockUpcomingDateRepository struct {
	mock.Mock
}

func (m *MockUpcomingDateRepository) Save(ctx context.Context, d *bulletin.UpcomingDate) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockUpcomingDateRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulletin.UpcomingDate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bulletin.UpcomingDate), args.Error(1)
}

func (m *MockUpcomingDateRepository) FindUpcoming(ctx context.Context, after time.Time) ([]bulletin.UpcomingDate, error) {
	args := m.Called(ctx, after)
	return args.Get(0).([]bulletin.UpcomingDate), args.Error(1)
}

func (m *MockUpcomingDateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newBulletinService() (*BulletinService, *MockAnnouncementRepository, *MockReminderRepository, *MockUpcomingDateRepository) {
	announcementRepo := new(MockAnnouncementRepository)
	reminderRepo := new(MockReminderRepository)
	upcomingRepo := new(MockUpcomingDateRepository)
	svc := NewBulletinService(announcementRepo, reminderRepo, upcomingRepo, zap.NewNop())
	return svc, announcementRepo, reminderRepo, upcomingRepo
}

func TestBoard(t *testing.T) {
	svc, announcementRepo, reminderRepo, upcomingRepo := newBulletinService()

	announcement, err := bulletin.NewAnnouncement("Orientation", "All scholars report to the AVR.", "mcruz", nil)
	require.NoError(t, err)
	announcementRepo.On("FindVisible", mock.Anything, mock.Anything).
		Return([]bulletin.Announcement{*announcement}, nil)

	reminder, err := bulletin.NewReminder("Submit your grade slips", bulletin.PriorityWarning, nil)
	require.NoError(t, err)
	reminderRepo.On("FindAll", mock.Anything).Return([]bulletin.Reminder{*reminder}, nil)

	upcoming, err := bulletin.NewUpcomingDate("Renewal deadline", time.Now().Add(14*24*time.Hour), "OSAS Office")
	require.NoError(t, err)
	upcomingRepo.On("FindUpcoming", mock.Anything, mock.Anything).
		Return([]bulletin.UpcomingDate{*upcoming}, nil)

	board, err := svc.Board(context.Background())
	require.NoError(t, err)

	require.Len(t, board.Announcements, 1)
	assert.Equal(t, "Orientation", board.Announcements[0].Title)
	require.Len(t, board.Reminders, 1)
	assert.Equal(t, bulletin.PriorityWarning, board.Reminders[0].Priority)
	require.Len(t, board.UpcomingDates, 1)
	assert.Equal(t, "Renewal deadline", board.UpcomingDates[0].Title)
}

func TestCreateAnnouncement(t *testing.T) {
	svc, announcementRepo, _, _ := newBulletinService()

	announcementRepo.On("Save", mock.Anything, mock.AnythingOfType("*bulletin.Announcement")).Return(nil)

	resp, err := svc.CreateAnnouncement(context.Background(), "mcruz", CreateAnnouncementRequest{
		Title:     "Interview week",
		Body:      "Interviews run March 3 to 7.",
		ExpiresAt: "2026-03-08T17:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Interview week", resp.Title)
	assert.Equal(t, "mcruz", resp.PostedBy)
	require.NotNil(t, resp.ExpiresAt)
	announcementRepo.AssertExpectations(t)
}

func TestCreateAnnouncementRejectsBadExpiry(t *testing.T) {
	svc, announcementRepo, _, _ := newBulletinService()

	_, err := svc.CreateAnnouncement(context.Background(), "mcruz", CreateAnnouncementRequest{
		Title:     "Interview week",
		Body:      "Interviews run March 3 to 7.",
		ExpiresAt: "next friday",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_EXPIRY", domainErr.Code)
	announcementRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUnpublishAnnouncement(t *testing.T) {
	svc, announcementRepo, _, _ := newBulletinService()

	announcement, err := bulletin.NewAnnouncement("Orientation", "All scholars report to the AVR.", "mcruz", nil)
	require.NoError(t, err)
	announcementRepo.On("FindByID", mock.Anything, announcement.ID).Return(announcement, nil)
	announcementRepo.On("Save", mock.Anything, announcement).Return(nil)

	require.NoError(t, svc.UnpublishAnnouncement(context.Background(), announcement.ID))
	assert.False(t, announcement.Published)
}

func TestCreateReminderDefaultsPriority(t *testing.T) {
	svc, _, reminderRepo, _ := newBulletinService()

	reminderRepo.On("Save", mock.Anything, mock.AnythingOfType("*bulletin.Reminder")).Return(nil)

	resp, err := svc.CreateReminder(context.Background(), CreateReminderRequest{
		Message: "Bring two valid IDs to the interview",
	})

	require.NoError(t, err)
	assert.Equal(t, bulletin.PriorityInfo, resp.Priority)
}

func TestCreateUpcomingDateRejectsBadDate(t *testing.T) {
	svc, _, _, upcomingRepo := newBulletinService()

	_, err := svc.CreateUpcomingDate(context.Background(), CreateUpcomingDateRequest{
		Title:   "Renewal deadline",
		Happens: "soon",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DATE", domainErr.Code)
	upcomingRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
