package service

import (
	"context"
	"errors"
	"testing"

	"dashgate/internal/db/ent"
)

func TestTeamCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name is rejected", func(t *testing.T) {
		svc := NewTeamService(&mockTeamRepository{})
		if _, err := svc.Create(ctx, "  ", ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("got err %v, want ErrValidation", err)
		}
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		svc := NewTeamService(&mockTeamRepository{
			getByNameFunc: func(ctx context.Context, name string) (*ent.Team, error) {
				return &ent.Team{ID: 1, Name: name, IsActive: true}, nil
			},
		})

		_, err := svc.Create(ctx, "Analytics", "")
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("got err %v, want ErrConflict", err)
		}
	})

	t.Run("free name creates", func(t *testing.T) {
		svc := NewTeamService(&mockTeamRepository{})

		team, err := svc.Create(ctx, "Finance", "money people")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if team.Name != "Finance" {
			t.Errorf("got name %q, want Finance", team.Name)
		}
	})
}

func TestTeamUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("renaming onto another team conflicts", func(t *testing.T) {
		svc := NewTeamService(&mockTeamRepository{
			getByNameFunc: func(ctx context.Context, name string) (*ent.Team, error) {
				return &ent.Team{ID: 2, Name: name, IsActive: true}, nil
			},
		})

		_, err := svc.Update(ctx, 1, "Analytics", "")
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("got err %v, want ErrConflict", err)
		}
	})

	t.Run("keeping own name is fine", func(t *testing.T) {
		svc := NewTeamService(&mockTeamRepository{
			getByNameFunc: func(ctx context.Context, name string) (*ent.Team, error) {
				return &ent.Team{ID: 1, Name: name, IsActive: true}, nil
			},
		})

		if _, err := svc.Update(ctx, 1, "Analytics", "new description"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTeamDeactivate(t *testing.T) {
	ctx := context.Background()

	deactivated := false
	svc := NewTeamService(&mockTeamRepository{
		deactivateFunc: func(ctx context.Context, id uint32) (*ent.Team, error) {
			deactivated = true
			return &ent.Team{ID: id, Name: "Analytics", IsActive: false}, nil
		},
	})

	team, err := svc.Deactivate(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deactivated {
		t.Fatal("repository Deactivate was never called")
	}
	if team.IsActive {
		t.Error("team is still active after deactivation")
	}
}
