package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() NewApplicationInput {
	return NewApplicationInput{
		StudentNumber:   "2021-00123",
		LastName:        "Reyes",
		FirstName:       "Ana",
		Email:           "ana.reyes@example.edu",
		Course:          "BS Information Technology",
		YearLevel:       "2nd Year",
		UnitsEnrolled:   21,
		GWA:             1.75,
		PreferredOffice: "Registrar",
	}
}

func TestNewApplication(t *testing.T) {
	app, err := NewApplication(validInput())
	require.NoError(t, err)

	assert.Equal(t, KindNew, app.Kind)
	assert.Equal(t, "2021-00123", app.StudentNumber)
	assert.Equal(t, StatusPending, app.Status)
	assert.Equal(t, 1, app.Version)
	assert.False(t, app.SubmittedAt.IsZero())
	assert.Len(t, app.GetDomainEvents(), 1)
	assert.Equal(t, EventApplicationSubmitted, app.GetDomainEvents()[0].EventType())
}

func TestNewApplicationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewApplicationInput)
	}{
		{"empty student number", func(in *NewApplicationInput) { in.StudentNumber = "" }},
		{"student number with letters", func(in *NewApplicationInput) { in.StudentNumber = "2021-ABC" }},
		{"student number too long", func(in *NewApplicationInput) { in.StudentNumber = "123456789012345678901" }},
		{"empty last name", func(in *NewApplicationInput) { in.LastName = "  " }},
		{"empty first name", func(in *NewApplicationInput) { in.FirstName = "" }},
		{"empty email", func(in *NewApplicationInput) { in.Email = "" }},
		{"empty course", func(in *NewApplicationInput) { in.Course = "" }},
		{"unknown kind", func(in *NewApplicationInput) { in.Kind = Kind("transfer") }},
		{"renewal without previous office", func(in *NewApplicationInput) { in.Kind = KindRenewal }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := NewApplication(in)
			assert.Error(t, err)
		})
	}
}

func TestNewRenewalApplication(t *testing.T) {
	in := validInput()
	in.Kind = KindRenewal
	in.PreviousOffice = "Library"
	in.HoursRendered = 180
	in.SupervisorName = "Mr. Santos"

	app, err := NewApplication(in)
	require.NoError(t, err)

	assert.True(t, app.IsRenewal())
	assert.Equal(t, "Library", app.PreviousOffice)
	assert.Equal(t, 180, app.HoursRendered)
}

func TestTransitionUnknownStatusIsNoOp(t *testing.T) {
	app, err := NewApplication(validInput())
	require.NoError(t, err)
	app.ClearDomainEvents()

	ok := app.Transition(TransitionInput{Status: "archived"})

	assert.False(t, ok)
	assert.Equal(t, StatusPending, app.Status)
	assert.Equal(t, 1, app.Version)
	assert.Empty(t, app.GetDomainEvents())
}

func TestTransitionRaisesStatusChangedEvent(t *testing.T) {
	app, err := NewApplication(validInput())
	require.NoError(t, err)
	app.ClearDomainEvents()

	ok := app.Transition(TransitionInput{Status: string(StatusUnderReview)})

	require.True(t, ok)
	assert.Equal(t, StatusUnderReview, app.Status)
	assert.Equal(t, 1, app.Version)
	require.Len(t, app.GetDomainEvents(), 1)

	event, isStatusChanged := app.GetDomainEvents()[0].(*ApplicationStatusChangedEvent)
	require.True(t, isStatusChanged)
	assert.Equal(t, StatusPending, event.OldStatus)
	assert.Equal(t, StatusUnderReview, event.NewStatus)
}

func TestTransitionInterviewScheduled(t *testing.T) {
	tests := []struct {
		name        string
		interviewAt string
		wantTime    *time.Time
	}{
		{
			name:        "datetime-local format",
			interviewAt: "2026-09-15T10:30",
			wantTime:    timePtr(time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)),
		},
		{
			name:        "full ISO-8601",
			interviewAt: "2026-09-15T10:30:00Z",
			wantTime:    timePtr(time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)),
		},
		{
			name:        "malformed value is dropped",
			interviewAt: "next tuesday",
			wantTime:    nil,
		},
		{
			name:        "empty value is dropped",
			interviewAt: "",
			wantTime:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApplication(validInput())
			require.NoError(t, err)

			ok := app.Transition(TransitionInput{
				Status:      string(StatusInterviewScheduled),
				InterviewAt: tt.interviewAt,
			})

			require.True(t, ok)
			assert.Equal(t, StatusInterviewScheduled, app.Status)
			if tt.wantTime == nil {
				assert.Nil(t, app.InterviewAt)
			} else {
				require.NotNil(t, app.InterviewAt)
				assert.True(t, tt.wantTime.Equal(*app.InterviewAt))
			}
		})
	}
}

func TestTransitionOfficeAssigned(t *testing.T) {
	t.Run("explicit office wins", func(t *testing.T) {
		app, err := NewApplication(validInput())
		require.NoError(t, err)

		ok := app.Transition(TransitionInput{
			Status:     string(StatusOfficeAssigned),
			OfficeName: "Accounting",
		})

		require.True(t, ok)
		assert.Equal(t, "Accounting", app.AssignedOffice)
	})

	t.Run("falls back to the preferred office", func(t *testing.T) {
		app, err := NewApplication(validInput())
		require.NoError(t, err)

		ok := app.Transition(TransitionInput{Status: string(StatusOfficeAssigned)})

		require.True(t, ok)
		assert.Equal(t, "Registrar", app.AssignedOffice)
	})

	t.Run("no office and no preference leaves assignment empty", func(t *testing.T) {
		in := validInput()
		in.PreferredOffice = ""
		app, err := NewApplication(in)
		require.NoError(t, err)

		ok := app.Transition(TransitionInput{Status: string(StatusOfficeAssigned)})

		require.True(t, ok)
		assert.Empty(t, app.AssignedOffice)
	})
}

func TestTransitionApproved(t *testing.T) {
	t.Run("approval overwrites a manual assignment with the preference", func(t *testing.T) {
		app, err := NewApplication(validInput())
		require.NoError(t, err)
		app.Transition(TransitionInput{Status: string(StatusOfficeAssigned), OfficeName: "Accounting"})

		ok := app.Transition(TransitionInput{
			Status:    string(StatusApproved),
			StartDate: "2026-09-01",
		})

		require.True(t, ok)
		assert.Equal(t, StatusApproved, app.Status)
		assert.Equal(t, "Registrar", app.AssignedOffice)
		require.NotNil(t, app.StartDate)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *app.StartDate)
	})

	t.Run("malformed start date is dropped", func(t *testing.T) {
		app, err := NewApplication(validInput())
		require.NoError(t, err)

		ok := app.Transition(TransitionInput{
			Status:    string(StatusApproved),
			StartDate: "September 1st",
		})

		require.True(t, ok)
		assert.Nil(t, app.StartDate)
	})

	t.Run("approval without a preference keeps the manual assignment", func(t *testing.T) {
		in := validInput()
		in.PreferredOffice = ""
		app, err := NewApplication(in)
		require.NoError(t, err)
		app.Transition(TransitionInput{Status: string(StatusOfficeAssigned), OfficeName: "Accounting"})

		ok := app.Transition(TransitionInput{Status: string(StatusApproved)})

		require.True(t, ok)
		assert.Equal(t, "Accounting", app.AssignedOffice)
	})
}

func TestOccupiesSlot(t *testing.T) {
	app, err := NewApplication(validInput())
	require.NoError(t, err)

	assert.False(t, app.OccupiesSlot())

	app.Transition(TransitionInput{Status: string(StatusOfficeAssigned)})
	assert.True(t, app.OccupiesSlot())

	app.Transition(TransitionInput{Status: string(StatusRejected)})
	assert.False(t, app.OccupiesSlot())
}

func TestFullName(t *testing.T) {
	in := validInput()
	in.MiddleName = "Cruz"
	app, err := NewApplication(in)
	require.NoError(t, err)
	assert.Equal(t, "Ana Cruz Reyes", app.FullName())

	app.MiddleName = ""
	assert.Equal(t, "Ana Reyes", app.FullName())
}

func TestDocumentTypesFor(t *testing.T) {
	assert.Len(t, DocumentTypesFor(KindNew), 9)
	assert.Len(t, DocumentTypesFor(KindRenewal), 6)

	assert.True(t, DocApplicationLetter.IsValidFor(KindNew))
	assert.False(t, DocApplicationLetter.IsValidFor(KindRenewal))
	assert.True(t, DocRenewalLetter.IsValidFor(KindRenewal))
	assert.False(t, DocRenewalLetter.IsValidFor(KindNew))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
