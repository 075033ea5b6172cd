package repository

import (
	"context"

	"dashgate/internal/db/ent"
	"dashgate/internal/db/ent/accessgrant"
	"dashgate/internal/db/ent/dashboard"
)

// dashboardRepository implements DashboardRepository interface
type dashboardRepository struct {
	client *ent.Client
}

// NewDashboardRepository creates a new DashboardRepository instance
func NewDashboardRepository(client *ent.Client) DashboardRepository {
	return &dashboardRepository{
		client: client,
	}
}

func (r *dashboardRepository) Get(ctx context.Context, id uint32) (*ent.Dashboard, error) {
	return r.client.Dashboard.Get(ctx, id)
}

func (r *dashboardRepository) GetWithGrants(ctx context.Context, id uint32) (*ent.Dashboard, error) {
	return r.client.Dashboard.Query().
		Where(dashboard.ID(id)).
		WithGrants().
		Only(ctx)
}

// ListWithGrants loads every dashboard together with its grants in one
// batched query instead of one access lookup per dashboard.
func (r *dashboardRepository) ListWithGrants(ctx context.Context) ([]*ent.Dashboard, error) {
	return r.client.Dashboard.Query().
		WithGrants().
		All(ctx)
}

func (r *dashboardRepository) Create(ctx context.Context, title, description, url, thumbnail string) (*ent.Dashboard, error) {
	return r.client.Dashboard.Create().
		SetTitle(title).
		SetDescription(description).
		SetURL(url).
		SetThumbnail(thumbnail).
		Save(ctx)
}

func (r *dashboardRepository) Update(ctx context.Context, id uint32, title, description, url, thumbnail string) (*ent.Dashboard, error) {
	return r.client.Dashboard.UpdateOneID(id).
		SetTitle(title).
		SetDescription(description).
		SetURL(url).
		SetThumbnail(thumbnail).
		Save(ctx)
}

func (r *dashboardRepository) Delete(ctx context.Context, id uint32) error {
	// Grants reference the dashboard; remove them first
	if _, err := r.client.AccessGrant.Delete().
		Where(accessgrant.DashboardID(id)).
		Exec(ctx); err != nil {
		return err
	}
	return r.client.Dashboard.DeleteOneID(id).Exec(ctx)
}
