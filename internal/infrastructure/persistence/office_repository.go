package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sap-portal/backend/internal/domain/office"
	"github.com/sap-portal/backend/internal/domain/shared"
)

// GormOfficeRepository implements office.Repository using GORM
type GormOfficeRepository struct {
	db *gorm.DB
}

// NewGormOfficeRepository creates a new GormOfficeRepository
func NewGormOfficeRepository(db *gorm.DB) *GormOfficeRepository {
	return &GormOfficeRepository{db: db}
}

// FindByID finds an office by its ID
func (r *GormOfficeRepository) FindByID(ctx context.Context, id uuid.UUID) (*office.Office, error) {
	var o office.Office
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByName finds an office by its registry name
func (r *GormOfficeRepository) FindByName(ctx context.Context, name string) (*office.Office, error) {
	var o office.Office
	if err := r.db.WithContext(ctx).
		Where("name = ?", strings.TrimSpace(name)).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindAll finds all offices matching the filter
func (r *GormOfficeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]office.Office, error) {
	var offices []office.Office
	query := r.applyFilter(r.db.WithContext(ctx).Model(&office.Office{}), filter)

	if err := query.Find(&offices).Error; err != nil {
		return nil, err
	}
	return offices, nil
}

// FindActive finds all active offices ordered by name
func (r *GormOfficeRepository) FindActive(ctx context.Context) ([]office.Office, error) {
	var offices []office.Office
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&offices).Error; err != nil {
		return nil, err
	}
	return offices, nil
}

// ExistsByName checks if an office with the given name exists
func (r *GormOfficeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&office.Office{}).
		Where("name = ?", strings.TrimSpace(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts the office on first persist. Updates bump the version
// once and compare against the version the aggregate was loaded with,
// failing when another writer got there first.
func (r *GormOfficeRepository) Save(ctx context.Context, o *office.Office) error {
	if !o.Persisted() {
		if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
			return err
		}
		o.MarkPersisted()
		return nil
	}

	loaded := o.LoadedVersion()
	o.Version = loaded + 1
	result := r.db.WithContext(ctx).Model(&office.Office{}).
		Where("id = ? AND version = ?", o.ID, loaded).
		Select("*").Updates(o)
	if result.Error != nil {
		o.Version = loaded
		return result.Error
	}
	if result.RowsAffected == 0 {
		o.Version = loaded
		return shared.ErrConcurrencyConflict
	}
	o.MarkPersisted()
	return nil
}

// Delete deletes an office
func (r *GormOfficeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&office.Office{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts offices matching the filter
func (r *GormOfficeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&office.Office{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormOfficeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("name ASC")
	}

	return query
}

func (r *GormOfficeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR building ILIKE ? OR head_name ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "building":
			query = query.Where("building = ?", value)
		}
	}

	return query
}

// Ensure GormOfficeRepository implements office.Repository
var _ office.Repository = (*GormOfficeRepository)(nil)
