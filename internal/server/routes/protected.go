package routes

import (
	"dashgate/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupProtectedRoutes configures routes that require authentication
func SetupProtectedRoutes(v1Group *gin.RouterGroup, h *Handlers, m *Middleware) {
	protected := v1Group.Group("/")
	protected.Use(m.Auth.RequireAuth())
	protected.Use(middleware.CSRFMiddleware(m.CSRF))

	// Current principal for the SPA header
	protected.GET("/user/profile", h.Auth.Profile)

	// Entitled dashboard listing for the logged-in principal
	protected.GET("/entitlements/dashboards", h.Entitlement.MyDashboards)

	// Click tracking
	protected.POST("/dashboards/:id/click", h.Entitlement.TrackClick)
}
