package service

import (
	"context"
	"errors"
	"testing"

	"dashgate/internal/db/ent"
)

func TestDashboardCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing fields", func(t *testing.T) {
		svc := NewDashboardService(&mockDashboardRepository{}, &mockClickRepository{})

		if _, err := svc.Create(ctx, "", "", "https://bi.example.com/d/1", ""); !errors.Is(err, ErrValidation) {
			t.Errorf("empty title: got err %v, want ErrValidation", err)
		}
		if _, err := svc.Create(ctx, "Revenue", "", "", ""); !errors.Is(err, ErrValidation) {
			t.Errorf("empty url: got err %v, want ErrValidation", err)
		}
		if _, err := svc.Create(ctx, "   ", "", "https://bi.example.com/d/1", ""); !errors.Is(err, ErrValidation) {
			t.Errorf("blank title: got err %v, want ErrValidation", err)
		}
	})

	t.Run("creates when required fields are present", func(t *testing.T) {
		svc := NewDashboardService(&mockDashboardRepository{}, &mockClickRepository{})

		d, err := svc.Create(ctx, "Revenue", "Weekly revenue", "https://bi.example.com/d/1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Title != "Revenue" {
			t.Errorf("unexpected dashboard: %+v", d)
		}
	})
}

func TestDashboardTrackClick(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the server-side title", func(t *testing.T) {
		var gotTitle string
		svc := NewDashboardService(
			&mockDashboardRepository{
				getFunc: func(ctx context.Context, id uint32) (*ent.Dashboard, error) {
					return newTestDashboard(id, "Revenue"), nil
				},
			},
			&mockClickRepository{
				createFunc: func(ctx context.Context, dashboardID uint32, dashboardTitle, userEmail string) (*ent.ClickEvent, error) {
					gotTitle = dashboardTitle
					return newTestClick(dashboardID, dashboardTitle, userEmail, day("2026-03-01")), nil
				},
			},
		)

		if err := svc.TrackClick(ctx, 4, "ana@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotTitle != "Revenue" {
			t.Errorf("stored title %q, want %q", gotTitle, "Revenue")
		}
	})

	t.Run("missing dashboard fails", func(t *testing.T) {
		svc := NewDashboardService(
			&mockDashboardRepository{
				getFunc: func(ctx context.Context, id uint32) (*ent.Dashboard, error) {
					return nil, &ent.NotFoundError{}
				},
			},
			&mockClickRepository{},
		)

		if err := svc.TrackClick(ctx, 99, "ana@example.com"); !ent.IsNotFound(err) {
			t.Errorf("got err %v, want not-found", err)
		}
	})
}
