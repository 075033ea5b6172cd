package repository

import (
	"context"
	"time"

	"dashgate/internal/db/ent"
	"dashgate/internal/db/ent/session"
	"dashgate/internal/db/ent/user"
)

// sessionRepository implements SessionRepository interface
type sessionRepository struct {
	client *ent.Client
}

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(client *ent.Client) SessionRepository {
	return &sessionRepository{
		client: client,
	}
}

func (r *sessionRepository) Get(ctx context.Context, id uint32) (*ent.Session, error) {
	return r.client.Session.Get(ctx, id)
}

func (r *sessionRepository) GetActiveSessions(ctx context.Context, userID uint32) ([]*ent.Session, error) {
	return r.client.Session.Query().
		Where(
			session.HasOwnerWith(user.ID(userID)),
			session.IsActive(true),
			session.ExpiresAtGT(time.Now()),
		).
		All(ctx)
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) (int, error) {
	return r.client.Session.Delete().
		Where(session.ExpiresAtLT(time.Now())).
		Exec(ctx)
}

func (r *sessionRepository) DeleteStaleInactive(ctx context.Context, cutoff time.Time) (int, error) {
	return r.client.Session.Delete().
		Where(
			session.IsActive(false),
			session.LastUsedLT(cutoff),
		).
		Exec(ctx)
}
