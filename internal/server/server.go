package server

import (
	"io"
	"time"

	"dashgate/internal/api/handlers"
	"dashgate/internal/api/middleware"
	"dashgate/internal/api/validation"
	"dashgate/internal/config"
	"dashgate/internal/db"
	"dashgate/internal/repository"
	"dashgate/internal/server/routes"
	"dashgate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const serviceName = "dashgate-api"

// NewServer creates a new server instance
func NewServer(cfg *config.Config, database *db.Database) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	// Register the custom binding validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	routes.SetupGlobalMiddleware(router, serviceName)

	return &Server{
		router: router,
		cfg:    cfg,
		db:     database,
	}
}

// Start wires repositories, services and handlers, then runs the listener.
func (s *Server) Start() error {
	repos := newRepositories(s.db)

	authService := service.NewAuthService(repos.Auth, time.Duration(s.cfg.SessionTTLHours)*time.Hour)
	csrfService := service.NewCSRFService()
	entitlementService := service.NewEntitlementService(repos.Dashboard, repos.Grant, repos.Team, repos.User)
	dashboardService := service.NewDashboardService(repos.Dashboard, repos.Click)
	teamService := service.NewTeamService(repos.Team)
	userService := service.NewUserService(repos.User)
	analyticsService := service.NewAnalyticsService(repos.Click)

	h := &routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService, csrfService),
		Health:      handlers.NewHealthHandler(s.db.DB),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		Entitlement: handlers.NewEntitlementHandler(entitlementService, dashboardService),
		Team:        handlers.NewTeamHandler(teamService),
		User:        handlers.NewUserHandler(userService),
		Analytics:   handlers.NewAnalyticsHandler(analyticsService),
	}

	m := &routes.Middleware{
		Auth:  middleware.NewAuthMiddleware(authService),
		Admin: middleware.NewAdminMiddleware(),
		CSRF:  csrfService,
	}

	routes.Setup(s.router, h, m)

	return s.router.Run(":" + s.cfg.Port)
}

func newRepositories(database *db.Database) *Repositories {
	return &Repositories{
		User:      repository.NewUserRepository(database.DB),
		Team:      repository.NewTeamRepository(database.DB),
		Dashboard: repository.NewDashboardRepository(database.DB),
		Grant:     repository.NewGrantRepository(database.DB),
		Click:     repository.NewClickRepository(database.DB),
		Session:   repository.NewSessionRepository(database.DB),
		Auth:      repository.NewAuthRepository(database.DB),
	}
}
