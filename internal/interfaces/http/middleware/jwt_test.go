package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sap-portal/backend/internal/infrastructure/auth"
	"github.com/sap-portal/backend/internal/infrastructure/config"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-test-access-secret",
		RefreshSecret:          "test-refresh-secret-test-refresh-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "sap-portal-test",
		MaxRefreshCount:        5,
	})
}

func newAuthedEngine(t *testing.T, cfg JWTMiddlewareConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuthMiddlewareWithConfig(cfg))
	engine.GET("/api/v1/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetJWTUserID(c),
			"role":    GetJWTRole(c),
		})
	})
	engine.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestJWTAuthMiddlewareAcceptsValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	engine := newAuthedEngine(t, JWTMiddlewareConfig{JWTService: jwtService})

	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "mlopez",
		Role:     "staff",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"staff"`)
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	engine := newAuthedEngine(t, JWTMiddlewareConfig{JWTService: newTestJWTService()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareRejectsMalformedToken(t *testing.T) {
	engine := newAuthedEngine(t, JWTMiddlewareConfig{JWTService: newTestJWTService()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareRejectsRefreshTokenOnAccessEndpoint(t *testing.T) {
	jwtService := newTestJWTService()
	engine := newAuthedEngine(t, JWTMiddlewareConfig{JWTService: jwtService})

	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "mlopez",
		Role:     "staff",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareSkipsConfiguredPaths(t *testing.T) {
	engine := newAuthedEngine(t, JWTMiddlewareConfig{
		JWTService: newTestJWTService(),
		SkipPaths:  []string{"/health"},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddlewareChecksBlacklist(t *testing.T) {
	jwtService := newTestJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	engine := newAuthedEngine(t, JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
	})

	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "mlopez",
		Role:     "director",
	})
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
}
