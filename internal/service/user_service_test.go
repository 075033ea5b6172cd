package service

import (
	"context"
	"errors"
	"testing"

	"dashgate/internal/db/ent"
)

func TestUserCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing fields", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{})

		if _, err := svc.Create(ctx, "", "a@example.com", "user", ""); !errors.Is(err, ErrValidation) {
			t.Errorf("empty name: got err %v, want ErrValidation", err)
		}
		if _, err := svc.Create(ctx, "Ana", "", "user", ""); !errors.Is(err, ErrValidation) {
			t.Errorf("empty email: got err %v, want ErrValidation", err)
		}
		if _, err := svc.Create(ctx, "Ana", "a@example.com", "owner", ""); !errors.Is(err, ErrValidation) {
			t.Errorf("unknown role: got err %v, want ErrValidation", err)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{
			getByEmailFunc: func(ctx context.Context, email string) (*ent.User, error) {
				return newTestUser(9, email, "user", ""), nil
			},
		})

		_, err := svc.Create(ctx, "Ana", "taken@example.com", "user", "")
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("got err %v, want ErrConflict", err)
		}
	})

	t.Run("creates when email is free", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{})

		u, err := svc.Create(ctx, "Ana", "ana@example.com", "admin", "Analytics")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Email != "ana@example.com" || u.Role != "admin" || u.Team != "Analytics" {
			t.Errorf("unexpected user: %+v", u)
		}
	})
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("own email does not conflict", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{
			getByEmailFunc: func(ctx context.Context, email string) (*ent.User, error) {
				return newTestUser(5, email, "user", ""), nil
			},
		})

		if _, err := svc.Update(ctx, 5, "Ana", "ana@example.com", "user", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("another user's email conflicts", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{
			getByEmailFunc: func(ctx context.Context, email string) (*ent.User, error) {
				return newTestUser(6, email, "user", ""), nil
			},
		})

		_, err := svc.Update(ctx, 5, "Ana", "taken@example.com", "user", "")
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("got err %v, want ErrConflict", err)
		}
	})
}

func TestDeleteAllInactive(t *testing.T) {
	ctx := context.Background()

	inactive := []*ent.User{
		newTestUser(1, "a@example.com", "user", ""),
		newTestUser(2, "b@example.com", "user", ""),
		newTestUser(3, "c@example.com", "user", ""),
	}

	t.Run("continues past individual failures", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{
			inactiveFunc: func(ctx context.Context) ([]*ent.User, error) {
				return inactive, nil
			},
			deleteFunc: func(ctx context.Context, id uint32) error {
				if id == 2 {
					return errors.New("foreign key violation")
				}
				return nil
			},
		})

		deleted, err := svc.DeleteAllInactive(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 2 {
			t.Errorf("got %d deleted, want 2", deleted)
		}
	})

	t.Run("empty sweep deletes nothing", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{})

		deleted, err := svc.DeleteAllInactive(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 0 {
			t.Errorf("got %d deleted, want 0", deleted)
		}
	})
}
