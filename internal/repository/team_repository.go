package repository

import (
	"context"

	"dashgate/internal/db/ent"
	"dashgate/internal/db/ent/team"
)

// teamRepository implements TeamRepository interface
type teamRepository struct {
	client *ent.Client
}

// NewTeamRepository creates a new TeamRepository instance
func NewTeamRepository(client *ent.Client) TeamRepository {
	return &teamRepository{
		client: client,
	}
}

func (r *teamRepository) Get(ctx context.Context, id uint32) (*ent.Team, error) {
	return r.client.Team.Get(ctx, id)
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*ent.Team, error) {
	return r.client.Team.Query().
		Where(team.Name(name)).
		Only(ctx)
}

func (r *teamRepository) Create(ctx context.Context, name, description string) (*ent.Team, error) {
	return r.client.Team.Create().
		SetName(name).
		SetDescription(description).
		SetIsActive(true).
		Save(ctx)
}

func (r *teamRepository) Update(ctx context.Context, id uint32, name, description string) (*ent.Team, error) {
	return r.client.Team.UpdateOneID(id).
		SetName(name).
		SetDescription(description).
		Save(ctx)
}

func (r *teamRepository) Deactivate(ctx context.Context, id uint32) (*ent.Team, error) {
	return r.client.Team.UpdateOneID(id).
		SetIsActive(false).
		Save(ctx)
}

func (r *teamRepository) List(ctx context.Context) ([]*ent.Team, error) {
	return r.client.Team.Query().All(ctx)
}

func (r *teamRepository) ListActive(ctx context.Context) ([]*ent.Team, error) {
	return r.client.Team.Query().
		Where(team.IsActive(true)).
		All(ctx)
}
