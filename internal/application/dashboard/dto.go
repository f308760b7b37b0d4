package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/sap-portal/backend/internal/domain/application"
	"github.com/sap-portal/backend/internal/domain/office"
)

// StatusCount is one slice of the status breakdown
type StatusCount struct {
	Status application.Status `json:"status"`
	Label  string             `json:"label"`
	Count  int64              `json:"count"`
}

// RecentApplication is a compact row for the dashboard's latest
// submissions panel
type RecentApplication struct {
	ID            uuid.UUID          `json:"id"`
	StudentNumber string             `json:"student_number"`
	FullName      string             `json:"full_name"`
	Kind          application.Kind   `json:"kind"`
	Status        application.Status `json:"status"`
	SubmittedAt   time.Time          `json:"submitted_at"`
}

// UpcomingInterview is a row in the interviews-this-week panel
type UpcomingInterview struct {
	ID            uuid.UUID `json:"id"`
	StudentNumber string    `json:"student_number"`
	FullName      string    `json:"full_name"`
	InterviewAt   time.Time `json:"interview_at"`
}

// StaffDashboardResponse is the review-queue overview for staff
type StaffDashboardResponse struct {
	TotalApplications  int64               `json:"total_applications"`
	PendingReview      int64               `json:"pending_review"`
	StatusBreakdown    []StatusCount       `json:"status_breakdown"`
	RecentApplications []RecentApplication `json:"recent_applications"`
	InterviewsThisWeek []UpcomingInterview `json:"interviews_this_week"`
}

// OfficeCapacitySummary is one office row on the director dashboard
type OfficeCapacitySummary struct {
	Name           string              `json:"name"`
	TotalSlots     int                 `json:"total_slots"`
	FilledSlots    int                 `json:"filled_slots"`
	AvailableSlots int                 `json:"available_slots"`
	Availability   office.Availability `json:"availability"`
}

// DirectorDashboardResponse extends the staff view with capacity and
// intake aggregates
type DirectorDashboardResponse struct {
	StaffDashboardResponse
	NewApplications     int64                   `json:"new_applications"`
	RenewalApplications int64                   `json:"renewal_applications"`
	ApprovedTotal       int64                   `json:"approved_total"`
	RejectedTotal       int64                   `json:"rejected_total"`
	OfficeCapacity      []OfficeCapacitySummary `json:"office_capacity"`
	PendingApproval     []RecentApplication     `json:"pending_approval"`
}
