package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/identity"
	"github.com/sap-portal/backend/internal/domain/shared"
	"github.com/sap-portal/backend/internal/infrastructure/auth"
)

// UserService handles director-only account management
type UserService struct {
	userRepo identity.Repository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.Repository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create registers a new back-office account
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already in use")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, shared.NewDomainError("PASSWORD_TOO_SHORT", "Password must be at least 8 characters")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to hash password")
	}

	user, err := identity.NewUser(req.Username, req.Email, hash, req.FullName, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User account created",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	resp := ToUserResponse(user)
	return &resp, nil
}

// List returns all back-office accounts
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx, shared.Filter{
		Page:     1,
		PageSize: 100,
		OrderBy:  "username",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponses(users), nil
}

// GetByID returns one account
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Deactivate disables an account. The last active director cannot be
// deactivated.
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.IsDirector() {
		directors, err := s.userRepo.Count(ctx, shared.Filter{
			Filters: map[string]interface{}{"role": string(identity.RoleDirector), "active": true},
		})
		if err != nil {
			return err
		}
		if directors <= 1 {
			return shared.NewDomainError("LAST_DIRECTOR", "Cannot deactivate the last active director")
		}
	}

	user.Deactivate()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User account deactivated", zap.String("username", user.Username))
	return nil
}
