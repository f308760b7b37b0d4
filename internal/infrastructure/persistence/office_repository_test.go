package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sap-portal/backend/internal/domain/shared"
)

// newMockOfficeRepository creates a GormOfficeRepository with a mocked SQL connection
func newMockOfficeRepository(t *testing.T) (*GormOfficeRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOfficeRepository(gormDB), mock, mockDB
}

func TestGormOfficeRepository_FindByID(t *testing.T) {
	t.Run("finds existing office", func(t *testing.T) {
		repo, mock, mockDB := newMockOfficeRepository(t)
		defer mockDB.Close()

		officeID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "building", "room", "total_slots", "active"}).
			AddRow(officeID, "Registrar", "Admin Building", "201", 3, true)

		mock.ExpectQuery(`SELECT \* FROM "offices" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(officeID, 1).
			WillReturnRows(rows)

		o, err := repo.FindByID(context.Background(), officeID)

		assert.NoError(t, err)
		assert.NotNil(t, o)
		assert.Equal(t, officeID, o.ID)
		assert.Equal(t, "Registrar", o.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing office", func(t *testing.T) {
		repo, mock, mockDB := newMockOfficeRepository(t)
		defer mockDB.Close()

		officeID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "offices" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(officeID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		o, err := repo.FindByID(context.Background(), officeID)

		assert.Error(t, err)
		assert.Nil(t, o)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOfficeRepository_FindByName(t *testing.T) {
	t.Run("finds office by name", func(t *testing.T) {
		repo, mock, mockDB := newMockOfficeRepository(t)
		defer mockDB.Close()

		officeID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "building", "room", "total_slots", "active"}).
			AddRow(officeID, "Library", "Main Building", "G-01", 2, true)

		mock.ExpectQuery(`SELECT \* FROM "offices" WHERE name = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("Library", 1).
			WillReturnRows(rows)

		o, err := repo.FindByName(context.Background(), "Library")

		assert.NoError(t, err)
		assert.NotNil(t, o)
		assert.Equal(t, "Library", o.Name)
		assert.Equal(t, 2, o.TotalSlots)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trims whitespace from the lookup name", func(t *testing.T) {
		repo, mock, mockDB := newMockOfficeRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "offices" WHERE name = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("Library", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByName(context.Background(), "  Library  ")

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOfficeRepository_ExistsByName(t *testing.T) {
	repo, mock, mockDB := newMockOfficeRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(1)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "offices" WHERE name = \$1`).
		WithArgs("Registrar").
		WillReturnRows(rows)

	exists, err := repo.ExistsByName(context.Background(), "Registrar")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
