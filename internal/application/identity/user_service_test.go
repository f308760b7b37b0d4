package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/identity"
	"github.com/sap-portal/backend/internal/domain/shared"
)

func newUserService(userRepo identity.Repository) *UserService {
	return NewUserService(userRepo, zap.NewNop())
}

func TestCreateUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "jdelacruz").Return(false, nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "jdelacruz",
		Email:    "jdelacruz@example.edu",
		Password: "a long enough password",
		FullName: "Juan Dela Cruz",
		Role:     "staff",
	})

	require.NoError(t, err)
	assert.Equal(t, "jdelacruz", resp.Username)
	assert.Equal(t, identity.RoleStaff, resp.Role)
	assert.True(t, resp.Active)
	userRepo.AssertExpectations(t)
}

func TestCreateUserRejectsTakenUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "jdelacruz").Return(true, nil)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "jdelacruz",
		Email:    "jdelacruz@example.edu",
		Password: "a long enough password",
		Role:     "staff",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "USERNAME_TAKEN", domainErr.Code)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "jdelacruz").Return(false, nil)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "jdelacruz",
		Email:    "jdelacruz@example.edu",
		Password: "short",
		Role:     "staff",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PASSWORD_TOO_SHORT", domainErr.Code)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "jdelacruz").Return(false, nil)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "jdelacruz",
		Email:    "jdelacruz@example.edu",
		Password: "a long enough password",
		Role:     "superadmin",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ROLE", domainErr.Code)
}

func TestDeactivateStaffAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	user := newTestUser(t, "a long enough password", identity.RoleStaff)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	require.NoError(t, svc.Deactivate(context.Background(), user.ID))
	assert.False(t, user.Active)
	userRepo.AssertExpectations(t)
}

func TestDeactivateKeepsLastDirector(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	director := newTestUser(t, "a long enough password", identity.RoleDirector)
	userRepo.On("FindByID", mock.Anything, director.ID).Return(director, nil)
	userRepo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	err := svc.Deactivate(context.Background(), director.ID)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "LAST_DIRECTOR", domainErr.Code)
	assert.True(t, director.Active)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeactivateDirectorWithAnotherActive(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	director := newTestUser(t, "a long enough password", identity.RoleDirector)
	userRepo.On("FindByID", mock.Anything, director.ID).Return(director, nil)
	userRepo.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)
	userRepo.On("Save", mock.Anything, director).Return(nil)

	require.NoError(t, svc.Deactivate(context.Background(), director.ID))
	assert.False(t, director.Active)
}

func TestListUsers(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	staff := newTestUser(t, "a long enough password", identity.RoleStaff)
	userRepo.On("FindAll", mock.Anything, mock.Anything).Return([]identity.User{*staff}, nil)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, staff.Username, users[0].Username)
}
