package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sap-portal/backend/internal/infrastructure/auth"
)

func newRoleEngine(role string, middleware gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	if role != "" {
		engine.Use(func(c *gin.Context) {
			c.Set(JWTClaimsKey, &auth.Claims{UserID: "user-1", Role: role})
			c.Next()
		})
	}
	engine.Use(middleware)
	engine.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	engine := newRoleEngine("director", RequireRole("director"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	engine := newRoleEngine("staff", RequireRole("director"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestRequireRoleRejectsMissingClaims(t *testing.T) {
	engine := newRoleEngine("", RequireRole("director"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAnyRole(t *testing.T) {
	engine := newRoleEngine("staff", RequireAnyRole("staff", "director"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
