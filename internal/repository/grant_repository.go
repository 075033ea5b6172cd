package repository

import (
	"context"

	"dashgate/internal/db/ent"
	"dashgate/internal/db/ent/accessgrant"
)

// grantRepository implements GrantRepository interface
type grantRepository struct {
	client *ent.Client
}

// NewGrantRepository creates a new GrantRepository instance
func NewGrantRepository(client *ent.Client) GrantRepository {
	return &grantRepository{
		client: client,
	}
}

func (r *grantRepository) ListByDashboard(ctx context.Context, dashboardID uint32) ([]*ent.AccessGrant, error) {
	return r.client.AccessGrant.Query().
		Where(accessgrant.DashboardID(dashboardID)).
		All(ctx)
}

func (r *grantRepository) Exists(ctx context.Context, dashboardID uint32, subjectKind, subject string) (bool, error) {
	return r.client.AccessGrant.Query().
		Where(
			accessgrant.DashboardID(dashboardID),
			accessgrant.SubjectKind(subjectKind),
			accessgrant.Subject(subject),
		).
		Exist(ctx)
}

func (r *grantRepository) Create(ctx context.Context, dashboardID uint32, subjectKind, subject string) (*ent.AccessGrant, error) {
	return r.client.AccessGrant.Create().
		SetDashboardID(dashboardID).
		SetSubjectKind(subjectKind).
		SetSubject(subject).
		Save(ctx)
}

func (r *grantRepository) Delete(ctx context.Context, dashboardID uint32, subjectKind, subject string) error {
	_, err := r.client.AccessGrant.Delete().
		Where(
			accessgrant.DashboardID(dashboardID),
			accessgrant.SubjectKind(subjectKind),
			accessgrant.Subject(subject),
		).
		Exec(ctx)
	return err
}

func (r *grantRepository) DeleteByDashboard(ctx context.Context, dashboardID uint32) error {
	_, err := r.client.AccessGrant.Delete().
		Where(accessgrant.DashboardID(dashboardID)).
		Exec(ctx)
	return err
}
