// Package office contains the use-case services for the office registry
// and its derived capacity view.
package office

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/application"
	"github.com/sap-portal/backend/internal/domain/office"
	"github.com/sap-portal/backend/internal/domain/shared"
)

// OfficeService manages the office registry. Registry edits are
// director-only; the list and capacity views are public.
type OfficeService struct {
	officeRepo office.Repository
	appRepo    application.Repository
	logger     *zap.Logger
}

// NewOfficeService creates a new OfficeService
func NewOfficeService(
	officeRepo office.Repository,
	appRepo application.Repository,
	logger *zap.Logger,
) *OfficeService {
	return &OfficeService{
		officeRepo: officeRepo,
		appRepo:    appRepo,
		logger:     logger,
	}
}

// Create registers a new office
func (s *OfficeService) Create(ctx context.Context, req CreateOfficeRequest) (*OfficeResponse, error) {
	exists, err := s.officeRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("OFFICE_EXISTS", "An office with this name already exists")
	}

	o, err := office.NewOffice(req.Name, req.Building, req.Room, req.TotalSlots)
	if err != nil {
		return nil, err
	}

	o.UpdateDetails(req.Building, req.Room, req.OfficeHours, req.HeadName, req.Icon, req.Description)
	if req.Latitude != 0 || req.Longitude != 0 {
		if err := o.UpdateLocation(req.Latitude, req.Longitude); err != nil {
			return nil, err
		}
	}

	if err := s.officeRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	o.ClearDomainEvents()

	s.logger.Info("Office created",
		zap.String("office_id", o.ID.String()),
		zap.String("name", o.Name),
		zap.Int("total_slots", o.TotalSlots))

	resp := ToOfficeResponse(o)
	return &resp, nil
}

// Update edits an existing registry entry
func (s *OfficeService) Update(ctx context.Context, id uuid.UUID, req UpdateOfficeRequest) (*OfficeResponse, error) {
	o, err := s.officeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	o.UpdateDetails(req.Building, req.Room, req.OfficeHours, req.HeadName, req.Icon, req.Description)

	if req.TotalSlots != nil {
		if err := o.UpdateTotalSlots(*req.TotalSlots); err != nil {
			return nil, err
		}
	}
	if req.Latitude != nil && req.Longitude != nil {
		if err := o.UpdateLocation(*req.Latitude, *req.Longitude); err != nil {
			return nil, err
		}
	}

	if err := s.officeRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	o.ClearDomainEvents()

	s.logger.Info("Office updated",
		zap.String("office_id", o.ID.String()),
		zap.String("name", o.Name))

	resp := ToOfficeResponse(o)
	return &resp, nil
}

// GetByID returns one registry entry
func (s *OfficeService) GetByID(ctx context.Context, id uuid.UUID) (*OfficeResponse, error) {
	o, err := s.officeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToOfficeResponse(o)
	return &resp, nil
}

// ListActive returns all active offices for the public selection list
func (s *OfficeService) ListActive(ctx context.Context) ([]OfficeResponse, error) {
	offices, err := s.officeRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToOfficeResponses(offices), nil
}

// Capacity returns the derived capacity view for every active office.
// Filled counts come from the applications table at read time; nothing
// is stored.
func (s *OfficeService) Capacity(ctx context.Context) ([]OfficeCapacityResponse, error) {
	offices, err := s.officeRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OfficeCapacityResponse, 0, len(offices))
	for i := range offices {
		o := &offices[i]
		filled, err := s.appRepo.CountAssignedToOffice(ctx, o.Name)
		if err != nil {
			return nil, err
		}
		responses = append(responses, ToOfficeCapacityResponse(o, o.Capacity(filled)))
	}

	return responses, nil
}

// CapacityByName returns the capacity report for one office
func (s *OfficeService) CapacityByName(ctx context.Context, name string) (*OfficeCapacityResponse, error) {
	o, err := s.officeRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("OFFICE_NOT_FOUND", "Office not found")
		}
		return nil, err
	}

	filled, err := s.appRepo.CountAssignedToOffice(ctx, o.Name)
	if err != nil {
		return nil, err
	}

	resp := ToOfficeCapacityResponse(o, o.Capacity(filled))
	return &resp, nil
}

// Deactivate removes an office from the selectable registry without
// deleting its history
func (s *OfficeService) Deactivate(ctx context.Context, id uuid.UUID) error {
	o, err := s.officeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	o.Deactivate()
	if err := s.officeRepo.Save(ctx, o); err != nil {
		return err
	}

	s.logger.Info("Office deactivated", zap.String("office_id", id.String()))
	return nil
}

// Reactivate returns an office to the selectable registry
func (s *OfficeService) Reactivate(ctx context.Context, id uuid.UUID) error {
	o, err := s.officeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	o.Reactivate()
	if err := s.officeRepo.Save(ctx, o); err != nil {
		return err
	}

	s.logger.Info("Office reactivated", zap.String("office_id", id.String()))
	return nil
}
