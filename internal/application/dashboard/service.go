// Package dashboard assembles the staff and director overview screens
// from the application, office, and capacity data.
package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/application"
	"github.com/sap-portal/backend/internal/domain/office"
	"github.com/sap-portal/backend/internal/domain/shared"
)

const recentLimit = 10

// DashboardService builds the back-office overview screens
type DashboardService struct {
	appRepo    application.Repository
	officeRepo office.Repository
	logger     *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	appRepo application.Repository,
	officeRepo office.Repository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		appRepo:    appRepo,
		officeRepo: officeRepo,
		logger:     logger,
	}
}

// Staff builds the staff overview: status breakdown, latest
// submissions, and the coming week's interviews
func (s *DashboardService) Staff(ctx context.Context) (*StaffDashboardResponse, error) {
	counts, err := s.appRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	breakdown := make([]StatusCount, 0, len(application.AllStatuses))
	for _, status := range application.AllStatuses {
		count := counts[status]
		total += count
		breakdown = append(breakdown, StatusCount{
			Status: status,
			Label:  status.Label(),
			Count:  count,
		})
	}

	recent, err := s.appRepo.FindAll(ctx, shared.Filter{
		Page:     1,
		PageSize: recentLimit,
		OrderBy:  "submitted_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	interviews, err := s.appRepo.FindInterviewsBetween(ctx, now, now.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	resp := &StaffDashboardResponse{
		TotalApplications:  total,
		PendingReview:      counts[application.StatusPending] + counts[application.StatusUnderReview],
		StatusBreakdown:    breakdown,
		RecentApplications: toRecentApplications(recent),
		InterviewsThisWeek: toUpcomingInterviews(interviews),
	}
	return resp, nil
}

// Director builds the director overview: the staff view plus intake
// totals and per-office capacity
func (s *DashboardService) Director(ctx context.Context) (*DirectorDashboardResponse, error) {
	staff, err := s.Staff(ctx)
	if err != nil {
		return nil, err
	}

	newCount, err := s.countByKind(ctx, application.KindNew)
	if err != nil {
		return nil, err
	}
	renewalCount, err := s.countByKind(ctx, application.KindRenewal)
	if err != nil {
		return nil, err
	}

	var approved, rejected int64
	for _, sc := range staff.StatusBreakdown {
		switch sc.Status {
		case application.StatusApproved:
			approved = sc.Count
		case application.StatusRejected:
			rejected = sc.Count
		}
	}

	pending, err := s.appRepo.FindByStatus(ctx, application.StatusOfficeAssigned, shared.Filter{
		Page:     1,
		PageSize: recentLimit,
		OrderBy:  "submitted_at",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	})
	if err != nil {
		return nil, err
	}

	offices, err := s.officeRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	capacity := make([]OfficeCapacitySummary, 0, len(offices))
	for i := range offices {
		o := &offices[i]
		filled, err := s.appRepo.CountAssignedToOffice(ctx, o.Name)
		if err != nil {
			return nil, err
		}
		report := o.Capacity(filled)
		capacity = append(capacity, OfficeCapacitySummary{
			Name:           report.OfficeName,
			TotalSlots:     report.TotalSlots,
			FilledSlots:    report.FilledSlots,
			AvailableSlots: report.AvailableSlots,
			Availability:   report.Availability,
		})
	}

	return &DirectorDashboardResponse{
		StaffDashboardResponse: *staff,
		NewApplications:        newCount,
		RenewalApplications:    renewalCount,
		ApprovedTotal:          approved,
		RejectedTotal:          rejected,
		OfficeCapacity:         capacity,
		PendingApproval:        toRecentApplications(pending),
	}, nil
}

func (s *DashboardService) countByKind(ctx context.Context, kind application.Kind) (int64, error) {
	return s.appRepo.Count(ctx, shared.Filter{
		Filters: map[string]interface{}{"kind": string(kind)},
	})
}

func toRecentApplications(apps []application.Application) []RecentApplication {
	rows := make([]RecentApplication, len(apps))
	for i := range apps {
		a := &apps[i]
		rows[i] = RecentApplication{
			ID:            a.ID,
			StudentNumber: a.StudentNumber,
			FullName:      a.FullName(),
			Kind:          a.Kind,
			Status:        a.Status,
			SubmittedAt:   a.SubmittedAt,
		}
	}
	return rows
}

func toUpcomingInterviews(apps []application.Application) []UpcomingInterview {
	rows := make([]UpcomingInterview, 0, len(apps))
	for i := range apps {
		a := &apps[i]
		if a.InterviewAt == nil {
			continue
		}
		rows = append(rows, UpcomingInterview{
			ID:            a.ID,
			StudentNumber: a.StudentNumber,
			FullName:      a.FullName(),
			InterviewAt:   *a.InterviewAt,
		})
	}
	return rows
}
