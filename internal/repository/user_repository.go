package repository

import (
	"context"
	"time"

	"dashgate/internal/db/ent"
	"dashgate/internal/db/ent/user"
)

// userRepository implements UserRepository interface
type userRepository struct {
	client *ent.Client
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(client *ent.Client) UserRepository {
	return &userRepository{
		client: client,
	}
}

func (r *userRepository) Get(ctx context.Context, id uint32) (*ent.User, error) {
	return r.client.User.Get(ctx, id)
}

func (r *userRepository) GetByFirebaseUID(ctx context.Context, firebaseUID string) (*ent.User, error) {
	return r.client.User.Query().
		Where(user.FirebaseUID(firebaseUID)).
		Only(ctx)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	return r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
}

func (r *userRepository) Create(ctx context.Context, name, email, role, team string) (*ent.User, error) {
	// Admin-created users have no Firebase identity yet; the UID is claimed
	// on their first SSO login, keyed by email.
	return r.client.User.Create().
		SetFirebaseUID("pending:" + email).
		SetName(name).
		SetEmail(email).
		SetRole(role).
		SetTeam(team).
		SetIsActive(true).
		Save(ctx)
}

func (r *userRepository) Update(ctx context.Context, id uint32, name, email, role, team string) (*ent.User, error) {
	return r.client.User.UpdateOneID(id).
		SetName(name).
		SetEmail(email).
		SetRole(role).
		SetTeam(team).
		Save(ctx)
}

func (r *userRepository) Delete(ctx context.Context, id uint32) error {
	return r.client.User.DeleteOneID(id).Exec(ctx)
}

func (r *userRepository) List(ctx context.Context) ([]*ent.User, error) {
	return r.client.User.Query().All(ctx)
}

func (r *userRepository) ListInactiveSince(ctx context.Context, cutoff time.Time) ([]*ent.User, error) {
	return r.client.User.Query().
		Where(
			user.Or(
				user.LastActivityLT(cutoff),
				user.And(user.LastActivityIsNil(), user.CreatedAtLT(cutoff)),
			),
		).
		All(ctx)
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.client.User.Query().Count(ctx)
	return int64(count), err
}
