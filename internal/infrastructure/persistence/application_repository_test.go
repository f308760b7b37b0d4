package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sap-portal/backend/internal/domain/application"
	"github.com/sap-portal/backend/internal/domain/shared"
)

// newTestApplicationRepository backs the repository with an in-memory
// sqlite database so the full query path is exercised
func newTestApplicationRepository(t *testing.T) *GormApplicationRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&application.Application{}, &application.Document{}))

	return NewGormApplicationRepository(db)
}

func newTestApplication(t *testing.T, studentNumber string) *application.Application {
	app, err := application.NewApplication(application.NewApplicationInput{
		Kind:            application.KindNew,
		StudentNumber:   studentNumber,
		LastName:        "Reyes",
		FirstName:       "Maria",
		Email:           "maria.reyes@example.edu",
		Course:          "BS Computer Science",
		YearLevel:       "2nd Year",
		UnitsEnrolled:   21,
		GWA:             1.75,
		PreferredOffice: "Registrar",
	})
	require.NoError(t, err)
	return app
}

func TestGormApplicationRepository_SaveAndFindByID(t *testing.T) {
	repo := newTestApplicationRepository(t)
	ctx := context.Background()

	app := newTestApplication(t, "2024-00123")
	require.NoError(t, repo.Save(ctx, app))

	found, err := repo.FindByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-00123", found.StudentNumber)
	assert.Equal(t, application.StatusPending, found.Status)
	assert.Equal(t, "Registrar", found.PreferredOffice)
}

func TestGormApplicationRepository_FindByIDNotFound(t *testing.T) {
	repo := newTestApplicationRepository(t)

	_, err := repo.FindByID(context.Background(), newTestApplication(t, "2024-00999").ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormApplicationRepository_FindByStudentNumberReturnsLatest(t *testing.T) {
	repo := newTestApplicationRepository(t)
	ctx := context.Background()

	older := newTestApplication(t, "2024-00123")
	older.SubmittedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Save(ctx, older))

	newer := newTestApplication(t, "2024-00123")
	require.NoError(t, repo.Save(ctx, newer))

	found, err := repo.FindByStudentNumber(ctx, " 2024-00123 ")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, found.ID)
}

func TestGormApplicationRepository_CountByStatus(t *testing.T) {
	repo := newTestApplicationRepository(t)
	ctx := context.Background()

	pending := newTestApplication(t, "2024-00001")
	require.NoError(t, repo.Save(ctx, pending))

	assigned := newTestApplication(t, "2024-00002")
	require.NoError(t, repo.Save(ctx, assigned))
	require.True(t, assigned.Transition(application.TransitionInput{
		Status:     string(application.StatusOfficeAssigned),
		OfficeName: "Library",
	}))
	require.NoError(t, repo.Save(ctx, assigned))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[application.StatusPending])
	assert.Equal(t, int64(1), counts[application.StatusOfficeAssigned])
}

func TestGormApplicationRepository_CountAssignedToOffice(t *testing.T) {
	repo := newTestApplicationRepository(t)
	ctx := context.Background()

	for i, number := range []string{"2024-00010", "2024-00011"} {
		app := newTestApplication(t, number)
		require.NoError(t, repo.Save(ctx, app))

		status := application.StatusOfficeAssigned
		if i == 1 {
			status = application.StatusApproved
		}
		require.True(t, app.Transition(application.TransitionInput{
			Status:     string(status),
			OfficeName: "Library",
		}))
		app.AssignedOffice = "Library"
		require.NoError(t, repo.Save(ctx, app))
	}

	// Rejected applications do not hold a slot
	rejected := newTestApplication(t, "2024-00012")
	require.NoError(t, repo.Save(ctx, rejected))
	require.True(t, rejected.Transition(application.TransitionInput{
		Status: string(application.StatusRejected),
	}))
	rejected.AssignedOffice = "Library"
	require.NoError(t, repo.Save(ctx, rejected))

	count, err := repo.CountAssignedToOffice(ctx, "Library")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormApplicationRepository_FindInterviewsBetween(t *testing.T) {
	repo := newTestApplicationRepository(t)
	ctx := context.Background()

	inWindow := newTestApplication(t, "2024-00020")
	require.NoError(t, repo.Save(ctx, inWindow))
	require.True(t, inWindow.Transition(application.TransitionInput{
		Status:      string(application.StatusInterviewScheduled),
		InterviewAt: time.Now().Add(24 * time.Hour).Format("2006-01-02T15:04"),
	}))
	require.NoError(t, repo.Save(ctx, inWindow))

	outOfWindow := newTestApplication(t, "2024-00021")
	require.NoError(t, repo.Save(ctx, outOfWindow))
	require.True(t, outOfWindow.Transition(application.TransitionInput{
		Status:      string(application.StatusInterviewScheduled),
		InterviewAt: time.Now().Add(240 * time.Hour).Format("2006-01-02T15:04"),
	}))
	require.NoError(t, repo.Save(ctx, outOfWindow))

	found, err := repo.FindInterviewsBetween(ctx, time.Now(), time.Now().Add(7*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, inWindow.ID, found[0].ID)
}

func TestGormApplicationRepository_FirstSaveInsertsAfterTransition(t *testing.T) {
	repo := newTestApplicationRepository(t)
	ctx := context.Background()

	app := newTestApplication(t, "2024-00024")
	require.True(t, app.Transition(application.TransitionInput{
		Status: string(application.StatusUnderReview),
	}))

	require.NoError(t, repo.Save(ctx, app))

	found, err := repo.FindByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusUnderReview, found.Status)
	assert.Equal(t, 1, found.Version)
}

func TestGormApplicationRepository_SaveDetectsStaleVersion(t *testing.T) {
	repo := newTestApplicationRepository(t)
	ctx := context.Background()

	app := newTestApplication(t, "2024-00025")
	require.NoError(t, repo.Save(ctx, app))

	first, err := repo.FindByID(ctx, app.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, app.ID)
	require.NoError(t, err)

	require.True(t, first.Transition(application.TransitionInput{
		Status: string(application.StatusUnderReview),
	}))
	require.NoError(t, repo.Save(ctx, first))

	require.True(t, second.Transition(application.TransitionInput{
		Status: string(application.StatusRejected),
	}))
	err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
}

func TestGormApplicationRepository_Delete(t *testing.T) {
	repo := newTestApplicationRepository(t)
	ctx := context.Background()

	app := newTestApplication(t, "2024-00030")
	require.NoError(t, repo.Save(ctx, app))

	require.NoError(t, repo.Delete(ctx, app.ID))

	_, err := repo.FindByID(ctx, app.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormApplicationRepository_FilterPagination(t *testing.T) {
	repo := newTestApplicationRepository(t)
	ctx := context.Background()

	for _, number := range []string{"2024-00040", "2024-00041", "2024-00042"} {
		require.NoError(t, repo.Save(ctx, newTestApplication(t, number)))
	}

	apps, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	total, err := repo.Count(ctx, shared.Filter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
