package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleConfig holds configuration for role middleware
type RoleConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
	// OnDenied is called when access is denied (optional)
	OnDenied func(c *gin.Context, requiredRoles []string)
}

// RequireRole creates middleware that requires a specific role
func RequireRole(role string) gin.HandlerFunc {
	return RequireAnyRole(role)
}

// RequireAnyRole creates middleware that requires any of the specified roles
// The user must hold at least one of the listed roles to proceed
func RequireAnyRole(roles ...string) gin.HandlerFunc {
	return RequireAnyRoleWithConfig(RoleConfig{}, roles...)
}

// RequireAnyRoleWithConfig creates role middleware with custom config
func RequireAnyRoleWithConfig(cfg RoleConfig, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			handleRoleDenied(c, cfg, roles, "No authentication claims found")
			return
		}

		allowed := false
		for _, role := range roles {
			if claims.HasRole(role) {
				allowed = true
				break
			}
		}
		if !allowed {
			handleRoleDenied(c, cfg, roles, "User lacks required role")
			return
		}

		if cfg.Logger != nil {
			cfg.Logger.Debug("Role check passed",
				zap.String("user_id", claims.UserID),
				zap.Strings("required_any", roles),
				zap.String("user_role", claims.Role),
			)
		}

		c.Next()
	}
}

// handleRoleDenied sends a 403 response for failed role checks
func handleRoleDenied(c *gin.Context, cfg RoleConfig, roles []string, reason string) {
	if cfg.OnDenied != nil {
		cfg.OnDenied(c, roles)
		return
	}

	if cfg.Logger != nil {
		cfg.Logger.Warn("Role check failed",
			zap.Strings("required_roles", roles),
			zap.String("reason", reason),
			zap.String("path", c.Request.URL.Path),
		)
	}

	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "FORBIDDEN",
			"message": "Requires role: " + strings.Join(roles, " or "),
		},
	})
}
