package service

import (
	"context"
	"fmt"
	"strings"

	"dashgate/internal/db/ent"
	"dashgate/internal/repository"
)

// DashboardService handles dashboard CRUD and click tracking.
type DashboardService interface {
	// List returns all dashboards with grants loaded, optionally filtered
	// by a search term and ordered by a sort key.
	List(ctx context.Context, term, sortKey string) ([]*ent.Dashboard, error)
	// Get returns one dashboard with grants loaded.
	Get(ctx context.Context, id uint32) (*ent.Dashboard, error)
	// Create creates a dashboard. Title and URL are required.
	Create(ctx context.Context, title, description, url, thumbnail string) (*ent.Dashboard, error)
	// Update rewrites a dashboard's fields. Title and URL are required.
	Update(ctx context.Context, id uint32, title, description, url, thumbnail string) (*ent.Dashboard, error)
	// Delete hard-deletes a dashboard and its grants.
	Delete(ctx context.Context, id uint32) error
	// TrackClick appends a click event for the dashboard. The stored title
	// comes from the dashboard record, not from the caller.
	TrackClick(ctx context.Context, dashboardID uint32, userEmail string) error
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	clickRepo     repository.ClickRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(dashboardRepo repository.DashboardRepository, clickRepo repository.ClickRepository) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		clickRepo:     clickRepo,
	}
}

func (s *dashboardService) List(ctx context.Context, term, sortKey string) ([]*ent.Dashboard, error) {
	dashboards, err := s.dashboardRepo.ListWithGrants(ctx)
	if err != nil {
		return []*ent.Dashboard{}, fmt.Errorf("failed to list dashboards: %w", err)
	}

	dashboards = FilterDashboards(dashboards, term)
	SortDashboards(dashboards, sortKey)
	return dashboards, nil
}

func (s *dashboardService) Get(ctx context.Context, id uint32) (*ent.Dashboard, error) {
	return s.dashboardRepo.GetWithGrants(ctx, id)
}

func (s *dashboardService) Create(ctx context.Context, title, description, url, thumbnail string) (*ent.Dashboard, error) {
	if err := validateDashboardFields(title, url); err != nil {
		return nil, err
	}
	return s.dashboardRepo.Create(ctx, title, description, url, thumbnail)
}

func (s *dashboardService) Update(ctx context.Context, id uint32, title, description, url, thumbnail string) (*ent.Dashboard, error) {
	if err := validateDashboardFields(title, url); err != nil {
		return nil, err
	}
	return s.dashboardRepo.Update(ctx, id, title, description, url, thumbnail)
}

func (s *dashboardService) Delete(ctx context.Context, id uint32) error {
	if _, err := s.dashboardRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.dashboardRepo.Delete(ctx, id)
}

func (s *dashboardService) TrackClick(ctx context.Context, dashboardID uint32, userEmail string) error {
	dashboard, err := s.dashboardRepo.Get(ctx, dashboardID)
	if err != nil {
		return err
	}
	_, err = s.clickRepo.Create(ctx, dashboard.ID, dashboard.Title, userEmail)
	return err
}

func validateDashboardFields(title, url string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("%w: url is required", ErrValidation)
	}
	return nil
}
