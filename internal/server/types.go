package server

import (
	"dashgate/internal/config"
	"dashgate/internal/db"
	"dashgate/internal/repository"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	db     *db.Database
}

// Repositories holds all repository instances
type Repositories struct {
	User      repository.UserRepository
	Team      repository.TeamRepository
	Dashboard repository.DashboardRepository
	Grant     repository.GrantRepository
	Click     repository.ClickRepository
	Session   repository.SessionRepository
	Auth      repository.AuthRepository
}
