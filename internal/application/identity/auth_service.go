// Package identity contains the use-case services for back-office
// accounts: authentication and director-only user management.
package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/identity"
	"github.com/sap-portal/backend/internal/domain/shared"
	"github.com/sap-portal/backend/internal/infrastructure/auth"
)

// AuthService handles back-office authentication
type AuthService struct {
	userRepo   identity.Repository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.Repository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a staff or director account and returns tokens
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("Login attempt for unknown username", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !user.Active {
		s.logger.Warn("Login attempt for deactivated account", zap.String("username", req.Username))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// A failed login-time update never blocks the login itself
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	return &LoginResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		TokenType:             tokenPair.TokenType,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		User:                  ToUserResponse(user),
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshTokenRequest) (*RefreshTokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Blacklist check failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate refresh token")
	}
	if blacklisted {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Refresh token has been revoked")
	}

	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		s.logger.Error("User invalidation check failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate refresh token")
	}
	if invalidated {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Session has been revoked. Please log in again")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	if !user.Active {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, user.Username)
	if err != nil {
		return nil, mapTokenError(err)
	}

	// The old refresh token is single-use
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Warn("Failed to blacklist rotated refresh token", zap.Error(err))
	}

	s.logger.Info("Token refreshed", zap.String("username", user.Username))

	return &RefreshTokenResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		TokenType:             tokenPair.TokenType,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
	}, nil
}

// Logout revokes the caller's current access token
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to blacklist token on logout", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
	}

	s.logger.Info("User logged out", zap.String("username", claims.Username))
	return nil
}

// ChangePassword rotates the caller's password and revokes every
// outstanding session
func (s *AuthService) ChangePassword(ctx context.Context, claims *auth.Claims, req ChangePasswordRequest) error {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if !auth.VerifyPassword(user.PasswordHash, req.OldPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return shared.NewDomainError("PASSWORD_TOO_SHORT", "Password must be at least 8 characters")
		}
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to hash password")
	}

	if err := user.ChangePassword(hash); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), s.jwtService.GetRefreshTokenExpiration()); err != nil {
		s.logger.Warn("Failed to revoke sessions after password change", zap.Error(err))
	}

	s.logger.Info("Password changed", zap.String("username", user.Username))
	return nil
}

// CurrentUser returns the account behind the presented claims
func (s *AuthService) CurrentUser(ctx context.Context, claims *auth.Claims) (*UserResponse, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// mapTokenError translates JWT layer errors into domain errors
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	case errors.Is(err, auth.ErrInvalidTokenType), errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidClaims), errors.Is(err, auth.ErrMissingUserID):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}
