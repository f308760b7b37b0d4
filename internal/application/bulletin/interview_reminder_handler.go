package bulletin

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/application"
	"github.com/sap-portal/backend/internal/domain/bulletin"
	"github.com/sap-portal/backend/internal/domain/shared"
)

// InterviewReminderHandler posts a board reminder whenever an interview
// is scheduled, so the staff bulletin reflects upcoming interviews
// without manual entry.
type InterviewReminderHandler struct {
	reminderRepo bulletin.ReminderRepository
	logger       *zap.Logger
}

// NewInterviewReminderHandler creates a new InterviewReminderHandler
func NewInterviewReminderHandler(reminderRepo bulletin.ReminderRepository, logger *zap.Logger) *InterviewReminderHandler {
	return &InterviewReminderHandler{
		reminderRepo: reminderRepo,
		logger:       logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *InterviewReminderHandler) EventTypes() []string {
	return []string{application.EventApplicationStatusChanged}
}

// Handle processes a status change event
func (h *InterviewReminderHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	changed, ok := event.(*application.ApplicationStatusChangedEvent)
	if !ok {
		return nil
	}
	if changed.NewStatus != application.StatusInterviewScheduled {
		return nil
	}

	message := fmt.Sprintf("Interview scheduled for applicant %s", changed.StudentNumber)
	reminder, err := bulletin.NewReminder(message, bulletin.PriorityWarning, nil)
	if err != nil {
		return err
	}

	if err := h.reminderRepo.Save(ctx, reminder); err != nil {
		h.logger.Error("Failed to save interview reminder",
			zap.String("student_number", changed.StudentNumber),
			zap.Error(err))
		return err
	}

	h.logger.Info("Interview reminder posted",
		zap.String("student_number", changed.StudentNumber))

	return nil
}

// Ensure InterviewReminderHandler implements EventHandler
var _ shared.EventHandler = (*InterviewReminderHandler)(nil)
