package bulletin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/application"
	"github.com/sap-portal/backend/internal/domain/bulletin"
	"github.com/sap-portal/backend/internal/domain/shared"
)

// MockReminderRepository is a mock implementation of
// bulletin.ReminderRepository
type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) Save(ctx context.Context, r *bulletin.Reminder) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReminderRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulletin.Reminder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bulletin.Reminder), args.Error(1)
}

func (m *MockReminderRepository) FindAll(ctx context.Context) ([]bulletin.Reminder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]bulletin.Reminder), args.Error(1)
}

func (m *MockReminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newStatusChangedEvent(t *testing.T, newStatus application.Status) *application.ApplicationStatusChangedEvent {
	t.Helper()
	app, err := application.NewApplication(application.NewApplicationInput{
		StudentNumber: "2021-00123",
		LastName:      "Reyes",
		FirstName:     "Ana",
		Email:         "ana@example.edu",
		Course:        "BSCS",
	})
	require.NoError(t, err)
	return application.NewApplicationStatusChangedEvent(app, application.StatusUnderReview, newStatus)
}

func TestInterviewReminderHandlerPostsReminder(t *testing.T) {
	repo := new(MockReminderRepository)
	handler := NewInterviewReminderHandler(repo, zap.NewNop())
	ctx := context.Background()

	var saved *bulletin.Reminder
	repo.On("Save", ctx, mock.AnythingOfType("*bulletin.Reminder")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*bulletin.Reminder)
		}).
		Return(nil)

	event := newStatusChangedEvent(t, application.StatusInterviewScheduled)
	require.NoError(t, handler.Handle(ctx, event))

	require.NotNil(t, saved)
	assert.Contains(t, saved.Message, "2021-00123")
	assert.Equal(t, bulletin.PriorityWarning, saved.Priority)
}

func TestInterviewReminderHandlerIgnoresOtherTransitions(t *testing.T) {
	repo := new(MockReminderRepository)
	handler := NewInterviewReminderHandler(repo, zap.NewNop())
	ctx := context.Background()

	event := newStatusChangedEvent(t, application.StatusApproved)
	require.NoError(t, handler.Handle(ctx, event))

	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInterviewReminderHandlerIgnoresForeignEvents(t *testing.T) {
	repo := new(MockReminderRepository)
	handler := NewInterviewReminderHandler(repo, zap.NewNop())

	base := shared.NewBaseDomainEvent("office.created", "Office", uuid.New())
	require.NoError(t, handler.Handle(context.Background(), &base))

	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInterviewReminderHandlerEventTypes(t *testing.T) {
	handler := NewInterviewReminderHandler(new(MockReminderRepository), zap.NewNop())
	assert.Equal(t, []string{application.EventApplicationStatusChanged}, handler.EventTypes())
}
