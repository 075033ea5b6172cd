package routes

import (
	"dashgate/internal/api/handlers"
	"dashgate/internal/api/middleware"
	"dashgate/internal/service"
)

// Handlers contains all the route handlers
type Handlers struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Dashboard   *handlers.DashboardHandler
	Entitlement *handlers.EntitlementHandler
	Team        *handlers.TeamHandler
	User        *handlers.UserHandler
	Analytics   *handlers.AnalyticsHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Auth  *middleware.AuthMiddleware
	Admin *middleware.AdminMiddleware
	CSRF  service.CSRFService
}
