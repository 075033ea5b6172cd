package middleware

import (
	"dashgate/internal/api/dto/common"
	"dashgate/internal/logging"
	"dashgate/internal/service"
	"dashgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware handles admin-only authorization
type AdminMiddleware struct{}

// NewAdminMiddleware creates a new admin middleware
func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// RequireAdmin ensures the resolved principal has the admin role.
// This should be used AFTER RequireAuth middleware.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := logging.GetGlobalLogger()

		principal, ok := PrincipalFromContext(c)
		if !ok {
			logger.Warn("Admin access attempted without authenticated principal")
			utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if decision := service.EvaluateRoute(service.RoleAdmin, principal); decision != service.DecisionAllow {
			logger.Warn("Non-admin principal attempted to access admin resource: userID=%d email=%s role=%s",
				principal.UserID, principal.Email, principal.Role)
			utils.HandleAPIError(c, nil, common.ErrCodeForbidden, "Admin access required")
			c.Abort()
			return
		}

		logger.Debug("Admin access granted for user: %d", principal.UserID)
		c.Next()
	}
}
