// Package application contains the use-case services for student
// assistant applications: submission, tracking, the staff review queue,
// and requirement document uploads.
package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/application"
	"github.com/sap-portal/backend/internal/domain/office"
	"github.com/sap-portal/backend/internal/domain/shared"
)

const birthDateFormat = "2006-01-02"

// ApplicationService handles application submission and review
type ApplicationService struct {
	appRepo    application.Repository
	docRepo    application.DocumentRepository
	officeRepo office.Repository
	publisher  shared.EventPublisher
	logger     *zap.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	appRepo application.Repository,
	docRepo application.DocumentRepository,
	officeRepo office.Repository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		appRepo:    appRepo,
		docRepo:    docRepo,
		officeRepo: officeRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// SubmitNew accepts a first-time application from the public form
func (s *ApplicationService) SubmitNew(ctx context.Context, req SubmitApplicationRequest) (*ApplicationResponse, error) {
	return s.submit(ctx, application.KindNew, req)
}

// SubmitRenewal accepts a renewal application from the public form
func (s *ApplicationService) SubmitRenewal(ctx context.Context, req SubmitApplicationRequest) (*ApplicationResponse, error) {
	return s.submit(ctx, application.KindRenewal, req)
}

func (s *ApplicationService) submit(ctx context.Context, kind application.Kind, req SubmitApplicationRequest) (*ApplicationResponse, error) {
	if req.PreferredOffice != "" {
		exists, err := s.officeRepo.ExistsByName(ctx, req.PreferredOffice)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, shared.NewDomainError("OFFICE_NOT_FOUND", "Preferred office is not in the registry")
		}
	}

	input := application.NewApplicationInput{
		Kind:            kind,
		StudentNumber:   req.StudentNumber,
		LastName:        req.LastName,
		FirstName:       req.FirstName,
		MiddleName:      req.MiddleName,
		ContactNumber:   req.ContactNumber,
		Email:           req.Email,
		Address:         req.Address,
		Course:          req.Course,
		YearLevel:       req.YearLevel,
		UnitsEnrolled:   req.UnitsEnrolled,
		GWA:             req.GWA,
		PreferredOffice: req.PreferredOffice,
		PreviousOffice:  req.PreviousOffice,
		HoursRendered:   req.HoursRendered,
		SupervisorName:  req.SupervisorName,
	}
	// A malformed birth date is dropped rather than rejected. The field
	// is informational and never gates the workflow.
	if req.BirthDate != "" {
		if t, err := time.Parse(birthDateFormat, req.BirthDate); err == nil {
			input.BirthDate = t
		}
	}

	app, err := application.NewApplication(input)
	if err != nil {
		return nil, err
	}

	if err := s.appRepo.Save(ctx, app); err != nil {
		s.logger.Error("Failed to save application",
			zap.String("student_number", app.StudentNumber),
			zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, app)

	s.logger.Info("Application submitted",
		zap.String("application_id", app.ID.String()),
		zap.String("student_number", app.StudentNumber),
		zap.String("kind", string(app.Kind)))

	resp := ToApplicationResponse(app)
	return &resp, nil
}

// Track returns the public tracking view for a student number. The
// lookup always resolves to the student's most recent application.
func (s *ApplicationService) Track(ctx context.Context, studentNumber string) (*TrackingResponse, error) {
	studentNumber = strings.TrimSpace(studentNumber)
	if studentNumber == "" {
		return nil, shared.NewDomainError("INVALID_STUDENT_NUMBER", "Student number cannot be empty")
	}

	app, err := s.appRepo.FindByStudentNumber(ctx, studentNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("APPLICATION_NOT_FOUND", "No application found for this student number")
		}
		return nil, err
	}

	docs, err := s.docRepo.FindByApplicationID(ctx, app.ID)
	if err != nil {
		return nil, err
	}

	resp := ToTrackingResponse(app, docs)
	return &resp, nil
}

// GetByID returns the full staff view of one application
func (s *ApplicationService) GetByID(ctx context.Context, id uuid.UUID) (*ApplicationResponse, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToApplicationResponse(app)
	return &resp, nil
}

// List returns the paginated staff review queue
func (s *ApplicationService) List(ctx context.Context, query ListApplicationsQuery) (*shared.Paginated[ApplicationListResponse], error) {
	filter := shared.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
		OrderBy:  query.OrderBy,
		OrderDir: query.OrderDir,
		Search:   query.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	if query.Status != "" {
		status, ok := application.ParseStatus(query.Status)
		if !ok {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown application status")
		}
		filter.Filters["status"] = string(status)
	}
	if query.Kind != "" {
		filter.Filters["kind"] = query.Kind
	}
	if query.PreferredOffice != "" {
		filter.Filters["preferred_office"] = query.PreferredOffice
	}
	if query.AssignedOffice != "" {
		filter.Filters["assigned_office"] = query.AssignedOffice
	}
	if query.Course != "" {
		filter.Filters["course"] = query.Course
	}

	apps, err := s.appRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.appRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToApplicationListResponses(apps), total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateStatus applies a staff status update through the transition gate
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*ApplicationResponse, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ok := app.Transition(application.TransitionInput{
		Status:      req.Status,
		InterviewAt: req.InterviewAt,
		OfficeName:  req.OfficeName,
		StartDate:   req.StartDate,
	})
	if !ok {
		// An unknown status value is ignored, not rejected: the
		// application comes back unchanged
		s.logger.Warn("Ignoring unknown status value",
			zap.String("application_id", app.ID.String()),
			zap.String("status", req.Status))
		resp := ToApplicationResponse(app)
		return &resp, nil
	}

	if err := s.appRepo.Save(ctx, app); err != nil {
		s.logger.Error("Failed to save status update",
			zap.String("application_id", app.ID.String()),
			zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, app)

	s.logger.Info("Application status updated",
		zap.String("application_id", app.ID.String()),
		zap.String("student_number", app.StudentNumber),
		zap.String("status", string(app.Status)))

	resp := ToApplicationResponse(app)
	return &resp, nil
}

// Delete removes an application and its document records. Director only;
// enforced at the route level.
func (s *ApplicationService) Delete(ctx context.Context, id uuid.UUID) error {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.appRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, application.NewApplicationDeletedEvent(app)); err != nil {
		s.logger.Warn("Failed to publish deletion event",
			zap.String("application_id", id.String()),
			zap.Error(err))
	}

	s.logger.Info("Application deleted",
		zap.String("application_id", id.String()),
		zap.String("student_number", app.StudentNumber))

	return nil
}

// ListInterviews returns applications with interviews scheduled inside
// the window, ordered by interview time
func (s *ApplicationService) ListInterviews(ctx context.Context, from, to time.Time) ([]ApplicationListResponse, error) {
	if !to.After(from) {
		return nil, shared.NewDomainError("INVALID_WINDOW", "Window end must be after its start")
	}

	apps, err := s.appRepo.FindInterviewsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return ToApplicationListResponses(apps), nil
}

// publishEvents flushes the aggregate's pending events to the bus
func (s *ApplicationService) publishEvents(ctx context.Context, app *application.Application) {
	events := app.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish domain events",
			zap.String("application_id", app.ID.String()),
			zap.Error(err))
	}
	app.ClearDomainEvents()
}
