package routes

import (
	"dashgate/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes configures admin routes (requires authentication AND admin role)
func SetupAdminRoutes(v1Group *gin.RouterGroup, h *Handlers, m *Middleware) {
	adminGroup := v1Group.Group("/admin")
	adminGroup.Use(m.Auth.RequireAuth())
	adminGroup.Use(middleware.CSRFMiddleware(m.CSRF))
	adminGroup.Use(m.Admin.RequireAdmin())

	// Dashboard management endpoints
	dashboards := adminGroup.Group("/dashboards")
	{
		dashboards.GET("", h.Dashboard.List)
		dashboards.POST("", h.Dashboard.Create)
		dashboards.GET("/:id", h.Dashboard.Get)
		dashboards.PUT("/:id", h.Dashboard.Update)
		dashboards.DELETE("/:id", h.Dashboard.Delete)

		// Access grant management
		dashboards.GET("/:id/grants", h.Entitlement.ListGrants)
		dashboards.POST("/:id/grants", h.Entitlement.Grant)
		dashboards.DELETE("/:id/grants", h.Entitlement.Revoke)
		dashboards.GET("/:id/grants/candidates", h.Entitlement.Candidates)
	}

	// Team management endpoints
	teams := adminGroup.Group("/teams")
	{
		teams.GET("", h.Team.List)
		teams.POST("", h.Team.Create)
		teams.PUT("/:id", h.Team.Update)
		teams.DELETE("/:id", h.Team.Delete)
	}

	// User management endpoints
	users := adminGroup.Group("/users")
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/inactive", h.User.ListInactive)
		users.DELETE("/inactive", h.User.DeleteInactive)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	// Click analytics endpoints
	analytics := adminGroup.Group("/analytics")
	{
		analytics.GET("/clicks", h.Analytics.Clicks)
	}
}
