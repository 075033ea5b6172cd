package service

import (
	"context"
	"fmt"

	"dashgate/internal/db/ent"
	"dashgate/internal/repository"
)

// GrantCandidates lists the subjects a dashboard can still be shared with:
// active teams and known user emails that hold no grant on it yet.
type GrantCandidates struct {
	Teams  []string `json:"teams"`
	Emails []string `json:"emails"`
}

// EntitlementService resolves which dashboards a principal may open and,
// conversely, which subjects may open a dashboard.
type EntitlementService interface {
	// ListDashboardsFor returns the dashboards the principal's scope is
	// granted, in storage order, each with its grants loaded. It never
	// panics: on failure it returns an empty slice and the error.
	ListDashboardsFor(ctx context.Context, p *Principal) ([]*ent.Dashboard, error)
	// ListGrants returns the access list of one dashboard.
	ListGrants(ctx context.Context, dashboardID uint32) ([]*ent.AccessGrant, error)
	// Grant adds a subject to a dashboard's access list and returns the
	// server-confirmed dashboard with its refreshed grants.
	Grant(ctx context.Context, dashboardID uint32, subjectKind, subject string) (*ent.Dashboard, error)
	// Revoke removes a subject from a dashboard's access list and returns
	// the server-confirmed dashboard with its refreshed grants.
	Revoke(ctx context.Context, dashboardID uint32, subjectKind, subject string) (*ent.Dashboard, error)
	// Candidates returns the subjects not yet granted on the dashboard.
	Candidates(ctx context.Context, dashboardID uint32) (*GrantCandidates, error)
}

type entitlementService struct {
	dashboardRepo repository.DashboardRepository
	grantRepo     repository.GrantRepository
	teamRepo      repository.TeamRepository
	userRepo      repository.UserRepository
}

// NewEntitlementService creates a new EntitlementService instance
func NewEntitlementService(
	dashboardRepo repository.DashboardRepository,
	grantRepo repository.GrantRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
) EntitlementService {
	return &entitlementService{
		dashboardRepo: dashboardRepo,
		grantRepo:     grantRepo,
		teamRepo:      teamRepo,
		userRepo:      userRepo,
	}
}

func (s *entitlementService) ListDashboardsFor(ctx context.Context, p *Principal) ([]*ent.Dashboard, error) {
	if p == nil || p.Subject == "" {
		return []*ent.Dashboard{}, fmt.Errorf("%w: principal has no entitlement scope", ErrValidation)
	}

	// One batched query for all dashboards and their grants, then an
	// in-memory match against the principal's single scope.
	dashboards, err := s.dashboardRepo.ListWithGrants(ctx)
	if err != nil {
		return []*ent.Dashboard{}, fmt.Errorf("failed to list dashboards: %w", err)
	}

	entitled := make([]*ent.Dashboard, 0, len(dashboards))
	for _, d := range dashboards {
		for _, g := range d.Edges.Grants {
			if g.SubjectKind == string(p.ScopeKind) && g.Subject == p.Subject {
				entitled = append(entitled, d)
				break
			}
		}
	}

	return entitled, nil
}

func (s *entitlementService) ListGrants(ctx context.Context, dashboardID uint32) ([]*ent.AccessGrant, error) {
	if _, err := s.dashboardRepo.Get(ctx, dashboardID); err != nil {
		return nil, err
	}
	return s.grantRepo.ListByDashboard(ctx, dashboardID)
}

func (s *entitlementService) Grant(ctx context.Context, dashboardID uint32, subjectKind, subject string) (*ent.Dashboard, error) {
	if err := validateSubject(subjectKind, subject); err != nil {
		return nil, err
	}

	if _, err := s.dashboardRepo.Get(ctx, dashboardID); err != nil {
		return nil, err
	}

	exists, err := s.grantRepo.Exists(ctx, dashboardID, subjectKind, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing grant: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s %q already has access", ErrConflict, subjectKind, subject)
	}

	if _, err := s.grantRepo.Create(ctx, dashboardID, subjectKind, subject); err != nil {
		return nil, fmt.Errorf("failed to create grant: %w", err)
	}

	// Echo the confirmed state back instead of trusting the caller to
	// patch its local copy.
	return s.dashboardRepo.GetWithGrants(ctx, dashboardID)
}

func (s *entitlementService) Revoke(ctx context.Context, dashboardID uint32, subjectKind, subject string) (*ent.Dashboard, error) {
	if err := validateSubject(subjectKind, subject); err != nil {
		return nil, err
	}

	exists, err := s.grantRepo.Exists(ctx, dashboardID, subjectKind, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing grant: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: no grant for %s %q", ErrNotFound, subjectKind, subject)
	}

	if err := s.grantRepo.Delete(ctx, dashboardID, subjectKind, subject); err != nil {
		return nil, fmt.Errorf("failed to delete grant: %w", err)
	}

	return s.dashboardRepo.GetWithGrants(ctx, dashboardID)
}

func (s *entitlementService) Candidates(ctx context.Context, dashboardID uint32) (*GrantCandidates, error) {
	grants, err := s.ListGrants(ctx, dashboardID)
	if err != nil {
		return nil, err
	}

	granted := make(map[string]bool, len(grants))
	for _, g := range grants {
		granted[g.SubjectKind+":"+g.Subject] = true
	}

	teams, err := s.teamRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	candidates := &GrantCandidates{
		Teams:  make([]string, 0, len(teams)),
		Emails: make([]string, 0, len(users)),
	}
	for _, t := range teams {
		if !granted[string(ScopeTeam)+":"+t.Name] {
			candidates.Teams = append(candidates.Teams, t.Name)
		}
	}
	for _, u := range users {
		if !granted[string(ScopeEmail)+":"+u.Email] {
			candidates.Emails = append(candidates.Emails, u.Email)
		}
	}

	return candidates, nil
}

func validateSubject(subjectKind, subject string) error {
	if subjectKind != string(ScopeTeam) && subjectKind != string(ScopeEmail) {
		return fmt.Errorf("%w: unknown subject kind %q", ErrValidation, subjectKind)
	}
	if subject == "" {
		return fmt.Errorf("%w: empty subject", ErrValidation)
	}
	return nil
}
