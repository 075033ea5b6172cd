package repository

import (
	"context"
	"time"

	"dashgate/internal/db/ent"
	"dashgate/internal/db/ent/clickevent"
)

// clickRepository implements ClickRepository interface
type clickRepository struct {
	client *ent.Client
}

// NewClickRepository creates a new ClickRepository instance
func NewClickRepository(client *ent.Client) ClickRepository {
	return &clickRepository{
		client: client,
	}
}

func (r *clickRepository) Create(ctx context.Context, dashboardID uint32, dashboardTitle, userEmail string) (*ent.ClickEvent, error) {
	return r.client.ClickEvent.Create().
		SetDashboardID(dashboardID).
		SetDashboardTitle(dashboardTitle).
		SetUserEmail(userEmail).
		Save(ctx)
}

func (r *clickRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*ent.ClickEvent, error) {
	return r.client.ClickEvent.Query().
		Where(
			clickevent.CreatedAtGTE(start),
			clickevent.CreatedAtLT(end),
		).
		Order(ent.Asc(clickevent.FieldCreatedAt)).
		All(ctx)
}
