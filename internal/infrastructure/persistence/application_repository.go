package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sap-portal/backend/internal/domain/application"
	"github.com/sap-portal/backend/internal/domain/shared"
)

// GormApplicationRepository implements application.Repository using GORM
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository creates a new GormApplicationRepository
func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// FindByID finds an application by its ID
func (r *GormApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*application.Application, error) {
	var app application.Application
	if err := r.db.WithContext(ctx).Preload("Documents").First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// FindByStudentNumber returns the most recent application for a student
// number. Students can apply more than once across terms; the tracking
// page always shows the latest submission.
func (r *GormApplicationRepository) FindByStudentNumber(ctx context.Context, studentNumber string) (*application.Application, error) {
	var app application.Application
	if err := r.db.WithContext(ctx).
		Where("student_number = ?", strings.TrimSpace(studentNumber)).
		Order("submitted_at DESC").
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// FindAll finds all applications matching the filter
func (r *GormApplicationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]application.Application, error) {
	var apps []application.Application
	query := r.applyFilter(r.db.WithContext(ctx).Model(&application.Application{}), filter)

	if err := query.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// FindByStatus finds applications in the given status
func (r *GormApplicationRepository) FindByStatus(ctx context.Context, status application.Status, filter shared.Filter) ([]application.Application, error) {
	var apps []application.Application
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&application.Application{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// FindByKind finds applications of the given kind
func (r *GormApplicationRepository) FindByKind(ctx context.Context, kind application.Kind, filter shared.Filter) ([]application.Application, error) {
	var apps []application.Application
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&application.Application{}).Where("kind = ?", kind),
		filter,
	)

	if err := query.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Save creates the application on first persist. Subsequent saves carry
// an optimistic version check so concurrent staff updates surface as a
// conflict instead of silently overwriting each other.
func (r *GormApplicationRepository) Save(ctx context.Context, app *application.Application) error {
	if !app.Persisted() {
		if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
			return err
		}
		app.MarkPersisted()
		return nil
	}

	loaded := app.LoadedVersion()
	app.Version = loaded + 1
	result := r.db.WithContext(ctx).Model(&application.Application{}).
		Where("id = ? AND version = ?", app.ID, loaded).
		Select("*").Omit("Documents").Updates(app)
	if result.Error != nil {
		app.Version = loaded
		return result.Error
	}
	if result.RowsAffected == 0 {
		app.Version = loaded
		return shared.ErrConcurrencyConflict
	}
	app.MarkPersisted()
	return nil
}

// Delete deletes an application
func (r *GormApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&application.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts applications matching the filter
func (r *GormApplicationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&application.Application{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus returns the number of applications per status
func (r *GormApplicationRepository) CountByStatus(ctx context.Context) (map[application.Status]int64, error) {
	type statusCount struct {
		Status application.Status
		Count  int64
	}

	var rows []statusCount
	if err := r.db.WithContext(ctx).
		Model(&application.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[application.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountAssignedToOffice returns the number of slot-occupying applications
// assigned to the named office
func (r *GormApplicationRepository) CountAssignedToOffice(ctx context.Context, officeName string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&application.Application{}).
		Where("assigned_office = ? AND status IN ?", officeName,
			[]application.Status{application.StatusOfficeAssigned, application.StatusApproved}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindInterviewsBetween returns applications with an interview scheduled
// inside the window
func (r *GormApplicationRepository) FindInterviewsBetween(ctx context.Context, from, to time.Time) ([]application.Application, error) {
	var apps []application.Application
	if err := r.db.WithContext(ctx).
		Where("interview_at IS NOT NULL AND interview_at >= ? AND interview_at < ?", from, to).
		Order("interview_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// applyFilter applies filter options to the query
func (r *GormApplicationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("submitted_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormApplicationRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("student_number ILIKE ? OR last_name ILIKE ? OR first_name ILIKE ? OR course ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "kind":
			query = query.Where("kind = ?", value)
		case "preferred_office":
			query = query.Where("preferred_office = ?", value)
		case "assigned_office":
			query = query.Where("assigned_office = ?", value)
		case "course":
			query = query.Where("course = ?", value)
		}
	}

	return query
}

// GormDocumentRepository implements application.DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// Save persists a document record
func (r *GormDocumentRepository) Save(ctx context.Context, doc *application.Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

// FindByID returns a document by its identifier
func (r *GormDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*application.Document, error) {
	var doc application.Document
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindByApplicationID returns all documents attached to an application
func (r *GormDocumentRepository) FindByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]application.Document, error) {
	var docs []application.Document
	if err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("uploaded_at ASC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Delete removes a document record
func (r *GormDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&application.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure the implementations satisfy the domain interfaces
var (
	_ application.Repository         = (*GormApplicationRepository)(nil)
	_ application.DocumentRepository = (*GormDocumentRepository)(nil)
)
