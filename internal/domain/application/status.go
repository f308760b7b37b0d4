package application

// Status represents the review status of an application
type Status string

const (
	StatusPending            Status = "pending"
	StatusUnderReview        Status = "under_review"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusInterviewDone      Status = "interview_done"
	StatusOfficeAssigned     Status = "office_assigned"
	StatusApproved           Status = "approved"
	StatusRejected           Status = "rejected"
)

// AllStatuses lists every member of the enumeration in pipeline order,
// with the terminal rejected state last.
var AllStatuses = []Status{
	StatusPending,
	StatusUnderReview,
	StatusInterviewScheduled,
	StatusInterviewDone,
	StatusOfficeAssigned,
	StatusApproved,
	StatusRejected,
}

// IsValid reports whether the status is a member of the enumeration
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusInterviewScheduled,
		StatusInterviewDone, StatusOfficeAssigned, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the review pipeline
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CountsTowardCapacity reports whether an application in this status
// occupies an office slot
func (s Status) CountsTowardCapacity() bool {
	return s == StatusOfficeAssigned || s == StatusApproved
}

// ParseStatus parses a raw string into a Status. The second return value
// is false for values outside the enumeration; callers treat that as a
// no-op rather than an error.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.IsValid()
}

// Label returns the user-facing status label
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusUnderReview:
		return "Under Review"
	case StatusInterviewScheduled:
		return "Interview Scheduled"
	case StatusInterviewDone:
		return "Interview Completed"
	case StatusOfficeAssigned:
		return "Office Assigned"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	default:
		return "Pending"
	}
}

// Message returns the user-facing status explanation shown on the
// tracking page
func (s Status) Message() string {
	switch s {
	case StatusPending:
		return "Your application has been received and is waiting for review."
	case StatusUnderReview:
		return "Our staff is currently verifying your submitted documents."
	case StatusInterviewScheduled:
		return "You have been scheduled for an interview. Please check your interview date."
	case StatusInterviewDone:
		return "Your interview is complete. Please wait while we process your office assignment."
	case StatusOfficeAssigned:
		return "An office has been assigned to you. Final approval is in progress."
	case StatusApproved:
		return "Congratulations! Your application has been approved."
	case StatusRejected:
		return "We regret to inform you that your application was not accepted."
	default:
		return "Your application has been received and is waiting for review."
	}
}
