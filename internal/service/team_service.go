package service

import (
	"context"
	"fmt"
	"strings"

	"dashgate/internal/db/ent"
	"dashgate/internal/repository"
)

// TeamService handles team CRUD. Teams are never hard-deleted: dashboards
// reference teams by name through access grants, so delete is a
// soft-deactivation that keeps the record.
type TeamService interface {
	// List returns all teams, active and deactivated, optionally filtered
	// and sorted.
	List(ctx context.Context, term, sortKey string) ([]*ent.Team, error)
	// Create creates a team. Name is required and must be unique.
	Create(ctx context.Context, name, description string) (*ent.Team, error)
	// Update renames a team or rewrites its description.
	Update(ctx context.Context, id uint32, name, description string) (*ent.Team, error)
	// Deactivate flips is_active to false, retaining the record.
	Deactivate(ctx context.Context, id uint32) (*ent.Team, error)
}

type teamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService instance
func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{
		teamRepo: teamRepo,
	}
}

func (s *teamService) List(ctx context.Context, term, sortKey string) ([]*ent.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return []*ent.Team{}, fmt.Errorf("failed to list teams: %w", err)
	}

	teams = FilterTeams(teams, term)
	SortTeams(teams, sortKey)
	return teams, nil
}

func (s *teamService) Create(ctx context.Context, name, description string) (*ent.Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if _, err := s.teamRepo.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: team %q already exists", ErrConflict, name)
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	return s.teamRepo.Create(ctx, name, description)
}

func (s *teamService) Update(ctx context.Context, id uint32, name, description string) (*ent.Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if existing, err := s.teamRepo.GetByName(ctx, name); err == nil && existing.ID != id {
		return nil, fmt.Errorf("%w: team %q already exists", ErrConflict, name)
	} else if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	return s.teamRepo.Update(ctx, id, name, description)
}

func (s *teamService) Deactivate(ctx context.Context, id uint32) (*ent.Team, error) {
	if _, err := s.teamRepo.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.teamRepo.Deactivate(ctx, id)
}
