package middleware

import (
	"strings"

	"dashgate/internal/api/constants"
	"dashgate/internal/api/dto/common"
	"dashgate/internal/logging"
	"dashgate/internal/service"
	"dashgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the session token into a principal for every
// guarded route.
type AuthMiddleware struct {
	authService service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth resolves the session cookie (or Bearer token) and attaches
// the principal to the request context. Requests without a valid session
// are rejected with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		principal, user, err := m.authService.Resolve(c.Request.Context(), token)
		if err != nil {
			utils.HandleAPIError(c, err, common.ErrCodeUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		if decision := service.EvaluateRoute(service.RoleUser, principal); decision != service.DecisionAllow {
			logging.GetGlobalLogger().Warn("Route guard denied request: %s", decision)
			utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyPrincipal, principal)
		c.Set(constants.ContextKeyUser, user)
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}

// sessionToken extracts the session token from the auth cookie, falling
// back to a Bearer Authorization header.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(constants.CookieAuthToken); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// PrincipalFromContext returns the principal attached by RequireAuth.
func PrincipalFromContext(c *gin.Context) (*service.Principal, bool) {
	val, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return nil, false
	}
	principal, ok := val.(*service.Principal)
	return principal, ok
}
