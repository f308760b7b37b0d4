package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sap-portal/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "sap-portal-test",
		MaxRefreshCount:        3,
	})
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:   userID,
		Username: "jdoe",
		Role:     "staff",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateAccessTokenRejectsRefreshToken(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "jdoe",
		Role:     "staff",
	})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:   userID,
		Username: "jdoe",
		Role:     "director",
	})
	require.NoError(t, err)

	newPair, err := svc.RefreshTokenPair(pair.RefreshToken, "jdoe")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(newPair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "director", claims.Role)

	refreshClaims, err := svc.ValidateRefreshToken(newPair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshClaims.RefreshCount)
}

func TestRefreshTokenPairLimitsRefreshCount(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "jdoe",
		Role:     "staff",
	})
	require.NoError(t, err)

	refreshToken := pair.RefreshToken
	for i := 0; i < 3; i++ {
		newPair, err := svc.RefreshTokenPair(refreshToken, "jdoe")
		require.NoError(t, err, "refresh %d should succeed", i+1)
		refreshToken = newPair.RefreshToken
	}

	_, err = svc.RefreshTokenPair(refreshToken, "jdoe")
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestClaimsHelpers(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:   userID,
		Username: "jdoe",
		Role:     "staff",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)

	assert.True(t, claims.HasRole("staff"))
	assert.False(t, claims.HasRole("director"))
	assert.Greater(t, claims.GetRemainingTTL(), time.Duration(0))
	assert.False(t, claims.GetIssuedAtTime().IsZero())
}
