package main

import (
	"context"
	"os"

	"dashgate/internal/config"
	"dashgate/internal/config/firebase"
	"dashgate/internal/db"
	"dashgate/internal/logging"
	"dashgate/internal/observability"
	"dashgate/internal/repository"
	"dashgate/internal/server"
	"dashgate/internal/tasks"
)

func main() {
	// Set development environment variables
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger configuration
	logConfig := &logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	// Initialize tracing
	shutdownTracing, err := observability.InitTracing(context.Background(), "dashgate-api", cfg.OTLPEndpoint, cfg.Environment)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}
	defer shutdownTracing(context.Background())

	// Initialize database connection
	entClient, err := db.Initialize()
	if err != nil {
		logger.Error("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer entClient.Close()

	// Create database wrapper
	database := db.NewDatabase(entClient)

	// Initialize Firebase
	if err := firebase.InitializeFirebase(); err != nil {
		logger.Error("Failed to initialize Firebase: %v", err)
		os.Exit(1)
	}

	// Start session cleanup task
	sessionCleanup := tasks.NewSessionCleanup(repository.NewSessionRepository(entClient))
	sessionCleanup.Start()
	defer sessionCleanup.Stop()
	logger.Info("Started session cleanup task")

	// Create and start server
	srv := server.NewServer(cfg, database)
	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
