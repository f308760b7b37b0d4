package application

import (
	"strings"
	"time"

	"github.com/sap-portal/backend/internal/domain/shared"
)

// Kind distinguishes the two application variants. A renewal carries the
// extra payload fields; everything else is shared.
type Kind string

const (
	KindNew     Kind = "new"
	KindRenewal Kind = "renewal"
)

// Interview timestamp formats accepted on the transition gate. The first
// is what browsers send from datetime-local inputs, the second is full
// ISO-8601.
var interviewTimeFormats = []string{
	"2006-01-02T15:04",
	time.RFC3339,
}

const startDateFormat = "2006-01-02"

// Application is the aggregate root for a student-assistant application,
// covering both first-time and renewal submissions.
type Application struct {
	shared.BaseAggregateRoot
	Kind          Kind   `gorm:"type:varchar(10);not null;default:'new';index"`
	StudentNumber string `gorm:"type:varchar(20);not null;index"`
	LastName      string `gorm:"type:varchar(100);not null"`
	FirstName     string `gorm:"type:varchar(100);not null"`
	MiddleName    string `gorm:"type:varchar(100)"`
	BirthDate     time.Time
	ContactNumber string  `gorm:"type:varchar(20)"`
	Email         string  `gorm:"type:varchar(200);not null"`
	Address       string  `gorm:"type:text"`
	Course        string  `gorm:"type:varchar(150);not null"`
	YearLevel     string  `gorm:"type:varchar(30)"`
	UnitsEnrolled int     `gorm:"not null;default:0"`
	GWA           float64 `gorm:"not null;default:0"`

	// Preferred office is a name reference into the office registry.
	// AssignedOffice is a denormalized name snapshot taken at
	// assignment time.
	PreferredOffice string `gorm:"type:varchar(200);index"`
	AssignedOffice  string `gorm:"type:varchar(200);index"`

	// Renewal payload, zero-valued for first-time applications.
	PreviousOffice string `gorm:"type:varchar(200)"`
	HoursRendered  int    `gorm:"not null;default:0"`
	SupervisorName string `gorm:"type:varchar(150)"`

	InterviewAt *time.Time `gorm:"index"`
	StartDate   *time.Time
	SubmittedAt time.Time `gorm:"not null;index"`
	Status      Status    `gorm:"type:varchar(30);not null;default:'pending';index"`

	Documents []Document `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Application) TableName() string {
	return "applications"
}

// NewApplicationInput holds the validated form fields for a submission
type NewApplicationInput struct {
	Kind            Kind
	StudentNumber   string
	LastName        string
	FirstName       string
	MiddleName      string
	BirthDate       time.Time
	ContactNumber   string
	Email           string
	Address         string
	Course          string
	YearLevel       string
	UnitsEnrolled   int
	GWA             float64
	PreferredOffice string
	PreviousOffice  string
	HoursRendered   int
	SupervisorName  string
}

// NewApplication creates a freshly submitted application in pending status
func NewApplication(in NewApplicationInput) (*Application, error) {
	if err := validateStudentNumber(in.StudentNumber); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.LastName) == "" || strings.TrimSpace(in.FirstName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Applicant name cannot be empty")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if strings.TrimSpace(in.Course) == "" {
		return nil, shared.NewDomainError("INVALID_COURSE", "Course cannot be empty")
	}
	kind := in.Kind
	if kind == "" {
		kind = KindNew
	}
	if kind != KindNew && kind != KindRenewal {
		return nil, shared.NewDomainError("INVALID_KIND", "Invalid application kind")
	}
	if kind == KindRenewal && strings.TrimSpace(in.PreviousOffice) == "" {
		return nil, shared.NewDomainError("INVALID_PREVIOUS_OFFICE", "Renewal applications require a previous office")
	}

	app := &Application{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              kind,
		StudentNumber:     strings.TrimSpace(in.StudentNumber),
		LastName:          in.LastName,
		FirstName:         in.FirstName,
		MiddleName:        in.MiddleName,
		BirthDate:         in.BirthDate,
		ContactNumber:     in.ContactNumber,
		Email:             in.Email,
		Address:           in.Address,
		Course:            in.Course,
		YearLevel:         in.YearLevel,
		UnitsEnrolled:     in.UnitsEnrolled,
		GWA:               in.GWA,
		PreferredOffice:   in.PreferredOffice,
		PreviousOffice:    in.PreviousOffice,
		HoursRendered:     in.HoursRendered,
		SupervisorName:    in.SupervisorName,
		SubmittedAt:       time.Now(),
		Status:            StatusPending,
	}

	app.AddDomainEvent(NewApplicationSubmittedEvent(app))

	return app, nil
}

// TransitionInput is the raw staff/director status-update payload. All
// fields arrive as strings; malformed optional fields are dropped
// silently rather than rejected.
type TransitionInput struct {
	Status      string
	InterviewAt string
	OfficeName  string
	StartDate   string
}

// Transition applies a status update per the gate rules. It returns
// false, leaving the aggregate untouched, when the requested status is
// outside the enumeration.
func (a *Application) Transition(in TransitionInput) bool {
	status, ok := ParseStatus(in.Status)
	if !ok {
		return false
	}

	previous := a.Status
	a.Status = status

	switch status {
	case StatusInterviewScheduled:
		if t, ok := parseInterviewTime(in.InterviewAt); ok {
			a.InterviewAt = &t
		}
	case StatusOfficeAssigned:
		// No slot-availability check here: overfilling by staff
		// action is an accepted operator decision.
		if in.OfficeName != "" {
			a.AssignedOffice = in.OfficeName
		} else if a.PreferredOffice != "" {
			a.AssignedOffice = a.PreferredOffice
		}
	case StatusApproved:
		if t, err := time.Parse(startDateFormat, in.StartDate); err == nil {
			a.StartDate = &t
		}
		// The preferred office is the final source of truth on
		// approval, overwriting any earlier manual assignment.
		if a.PreferredOffice != "" {
			a.AssignedOffice = a.PreferredOffice
		}
	}

	a.UpdatedAt = time.Now()
	a.AddDomainEvent(NewApplicationStatusChangedEvent(a, previous, status))

	return true
}

// FullName returns the applicant's display name
func (a *Application) FullName() string {
	parts := []string{a.FirstName}
	if a.MiddleName != "" {
		parts = append(parts, a.MiddleName)
	}
	parts = append(parts, a.LastName)
	return strings.Join(parts, " ")
}

// IsRenewal reports whether this is a renewal application
func (a *Application) IsRenewal() bool {
	return a.Kind == KindRenewal
}

// OccupiesSlot reports whether the application counts toward office
// capacity
func (a *Application) OccupiesSlot() bool {
	return a.Status.CountsTowardCapacity()
}

// Steps returns the workflow step list for the application's status
func (a *Application) Steps() []Step {
	return Steps(a.Status)
}

// Progress returns the workflow progress percentage
func (a *Application) Progress() int {
	return Progress(a.Status)
}

func parseInterviewTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range interviewTimeFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func validateStudentNumber(number string) error {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_STUDENT_NUMBER", "Student number cannot be empty")
	}
	if len(trimmed) > 20 {
		return shared.NewDomainError("INVALID_STUDENT_NUMBER", "Student number cannot exceed 20 characters")
	}
	for _, r := range trimmed {
		if !((r >= '0' && r <= '9') || r == '-') {
			return shared.NewDomainError("INVALID_STUDENT_NUMBER", "Student number can only contain digits and hyphens")
		}
	}
	return nil
}
