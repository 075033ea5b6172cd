package tasks

import (
	"context"
	"sync"
	"time"

	"dashgate/internal/logging"
	"dashgate/internal/repository"
)

// SessionCleanup handles periodic cleaning of expired sessions
type SessionCleanup struct {
	sessionRepo repository.SessionRepository
	done        chan struct{}
	wg          sync.WaitGroup
}

// NewSessionCleanup creates a new session cleanup task
func NewSessionCleanup(sessionRepo repository.SessionRepository) *SessionCleanup {
	return &SessionCleanup{
		sessionRepo: sessionRepo,
		done:        make(chan struct{}),
	}
}

// Start begins the session cleanup task in the background
func (sc *SessionCleanup) Start() {
	sc.wg.Add(1)
	go sc.runPeriodically()
}

// Stop gracefully stops the session cleanup task
func (sc *SessionCleanup) Stop() {
	close(sc.done)
	sc.wg.Wait()
}

// runPeriodically runs the cleanup task at regular intervals
func (sc *SessionCleanup) runPeriodically() {
	defer sc.wg.Done()

	// Run immediately on startup
	sc.cleanup()

	// Then run every 12 hours
	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sc.cleanup()
		case <-sc.done:
			logging.GetGlobalLogger().Info("Session cleanup task stopped")
			return
		}
	}
}

// cleanup performs the actual session cleanup
func (sc *SessionCleanup) cleanup() {
	ctx := context.Background()
	logger := logging.GetGlobalLogger()

	logger.Info("Starting session cleanup task")

	expired, err := sc.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		logger.Error("Failed to delete expired sessions: %v", err)
	} else {
		logger.Info("Deleted %d expired sessions", expired)
	}

	// Inactive sessions unused for 30 days are dropped as well
	stale, err := sc.sessionRepo.DeleteStaleInactive(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		logger.Error("Failed to delete stale sessions: %v", err)
	} else {
		logger.Info("Deleted %d stale inactive sessions", stale)
	}

	logger.Info("Session cleanup task completed")
}
