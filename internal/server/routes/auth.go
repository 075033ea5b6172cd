package routes

import (
	"dashgate/internal/api/handlers"
	"dashgate/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures authentication related routes
func SetupAuthRoutes(router *gin.RouterGroup, auth *handlers.AuthHandler, m *Middleware) {
	public := router.Group("/auth")
	{
		// No CSRF protection for login: the session does not exist yet
		public.POST("/login", auth.Login)
		public.GET("/session", auth.Session)

		// CSRF protected routes
		csrfProtected := public.Group("/")
		csrfProtected.Use(middleware.CSRFMiddleware(m.CSRF))
		{
			csrfProtected.POST("/logout", auth.Logout)
		}
	}
}
