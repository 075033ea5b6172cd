package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashgate/internal/db/ent"
	"dashgate/internal/repository"
)

// Mock DashboardRepository
type mockDashboardRepository struct {
	repository.DashboardRepository
	getFunc            func(ctx context.Context, id uint32) (*ent.Dashboard, error)
	getWithGrantsFunc  func(ctx context.Context, id uint32) (*ent.Dashboard, error)
	listWithGrantsFunc func(ctx context.Context) ([]*ent.Dashboard, error)
	createFunc         func(ctx context.Context, title, description, url, thumbnail string) (*ent.Dashboard, error)
}

func (m *mockDashboardRepository) Create(ctx context.Context, title, description, url, thumbnail string) (*ent.Dashboard, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, title, description, url, thumbnail)
	}
	return newTestDashboard(1, title), nil
}

func (m *mockDashboardRepository) Get(ctx context.Context, id uint32) (*ent.Dashboard, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return newTestDashboard(id, "Dashboard"), nil
}

func (m *mockDashboardRepository) GetWithGrants(ctx context.Context, id uint32) (*ent.Dashboard, error) {
	if m.getWithGrantsFunc != nil {
		return m.getWithGrantsFunc(ctx, id)
	}
	return newTestDashboard(id, "Dashboard"), nil
}

func (m *mockDashboardRepository) ListWithGrants(ctx context.Context) ([]*ent.Dashboard, error) {
	if m.listWithGrantsFunc != nil {
		return m.listWithGrantsFunc(ctx)
	}
	return []*ent.Dashboard{}, nil
}

// Mock GrantRepository
type mockGrantRepository struct {
	repository.GrantRepository
	listByDashboardFunc func(ctx context.Context, dashboardID uint32) ([]*ent.AccessGrant, error)
	existsFunc          func(ctx context.Context, dashboardID uint32, subjectKind, subject string) (bool, error)
	createFunc          func(ctx context.Context, dashboardID uint32, subjectKind, subject string) (*ent.AccessGrant, error)
	deleteFunc          func(ctx context.Context, dashboardID uint32, subjectKind, subject string) error
}

func (m *mockGrantRepository) ListByDashboard(ctx context.Context, dashboardID uint32) ([]*ent.AccessGrant, error) {
	if m.listByDashboardFunc != nil {
		return m.listByDashboardFunc(ctx, dashboardID)
	}
	return []*ent.AccessGrant{}, nil
}

func (m *mockGrantRepository) Exists(ctx context.Context, dashboardID uint32, subjectKind, subject string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, dashboardID, subjectKind, subject)
	}
	return false, nil
}

func (m *mockGrantRepository) Create(ctx context.Context, dashboardID uint32, subjectKind, subject string) (*ent.AccessGrant, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, dashboardID, subjectKind, subject)
	}
	return newTestGrant(dashboardID, subjectKind, subject), nil
}

func (m *mockGrantRepository) Delete(ctx context.Context, dashboardID uint32, subjectKind, subject string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, dashboardID, subjectKind, subject)
	}
	return nil
}

// Mock TeamRepository
type mockTeamRepository struct {
	repository.TeamRepository
	getFunc        func(ctx context.Context, id uint32) (*ent.Team, error)
	getByNameFunc  func(ctx context.Context, name string) (*ent.Team, error)
	listFunc       func(ctx context.Context) ([]*ent.Team, error)
	listActiveFunc func(ctx context.Context) ([]*ent.Team, error)
	createFunc     func(ctx context.Context, name, description string) (*ent.Team, error)
	updateFunc     func(ctx context.Context, id uint32, name, description string) (*ent.Team, error)
	deactivateFunc func(ctx context.Context, id uint32) (*ent.Team, error)
}

func (m *mockTeamRepository) Get(ctx context.Context, id uint32) (*ent.Team, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &ent.Team{ID: id, Name: "Team", IsActive: true}, nil
}

func (m *mockTeamRepository) GetByName(ctx context.Context, name string) (*ent.Team, error) {
	if m.getByNameFunc != nil {
		return m.getByNameFunc(ctx, name)
	}
	return nil, &ent.NotFoundError{}
}

func (m *mockTeamRepository) List(ctx context.Context) ([]*ent.Team, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*ent.Team{}, nil
}

func (m *mockTeamRepository) ListActive(ctx context.Context) ([]*ent.Team, error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(ctx)
	}
	return []*ent.Team{}, nil
}

func (m *mockTeamRepository) Create(ctx context.Context, name, description string) (*ent.Team, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, name, description)
	}
	return &ent.Team{ID: 1, Name: name, Description: description, IsActive: true}, nil
}

func (m *mockTeamRepository) Update(ctx context.Context, id uint32, name, description string) (*ent.Team, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, name, description)
	}
	return &ent.Team{ID: id, Name: name, Description: description, IsActive: true}, nil
}

func (m *mockTeamRepository) Deactivate(ctx context.Context, id uint32) (*ent.Team, error) {
	if m.deactivateFunc != nil {
		return m.deactivateFunc(ctx, id)
	}
	return &ent.Team{ID: id, Name: "Team", IsActive: false}, nil
}

// Mock UserRepository
type mockUserRepository struct {
	repository.UserRepository
	getFunc        func(ctx context.Context, id uint32) (*ent.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*ent.User, error)
	listFunc       func(ctx context.Context) ([]*ent.User, error)
	createFunc     func(ctx context.Context, name, email, role, team string) (*ent.User, error)
	updateFunc     func(ctx context.Context, id uint32, name, email, role, team string) (*ent.User, error)
	deleteFunc     func(ctx context.Context, id uint32) error
	inactiveFunc   func(ctx context.Context) ([]*ent.User, error)
}

func (m *mockUserRepository) Get(ctx context.Context, id uint32) (*ent.User, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return newTestUser(id, "user@example.com", "user", ""), nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, &ent.NotFoundError{}
}

func (m *mockUserRepository) List(ctx context.Context) ([]*ent.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*ent.User{}, nil
}

func (m *mockUserRepository) Create(ctx context.Context, name, email, role, team string) (*ent.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, name, email, role, team)
	}
	u := newTestUser(1, email, role, team)
	u.Name = name
	return u, nil
}

func (m *mockUserRepository) Update(ctx context.Context, id uint32, name, email, role, team string) (*ent.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, name, email, role, team)
	}
	u := newTestUser(id, email, role, team)
	u.Name = name
	return u, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint32) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ListInactiveSince(ctx context.Context, cutoff time.Time) ([]*ent.User, error) {
	if m.inactiveFunc != nil {
		return m.inactiveFunc(ctx)
	}
	return []*ent.User{}, nil
}

func newEntitlementService(d *mockDashboardRepository, g *mockGrantRepository, t *mockTeamRepository, u *mockUserRepository) EntitlementService {
	if d == nil {
		d = &mockDashboardRepository{}
	}
	if g == nil {
		g = &mockGrantRepository{}
	}
	if t == nil {
		t = &mockTeamRepository{}
	}
	if u == nil {
		u = &mockUserRepository{}
	}
	return NewEntitlementService(d, g, t, u)
}

func TestListDashboardsFor(t *testing.T) {
	ctx := context.Background()

	dashboards := []*ent.Dashboard{
		newTestDashboard(1, "Revenue", newTestGrant(1, "team", "Analytics")),
		newTestDashboard(2, "Churn", newTestGrant(2, "email", "solo@example.com")),
		newTestDashboard(3, "Costs"),
	}

	repo := &mockDashboardRepository{
		listWithGrantsFunc: func(ctx context.Context) ([]*ent.Dashboard, error) {
			return dashboards, nil
		},
	}
	svc := newEntitlementService(repo, nil, nil, nil)

	t.Run("team scope matches team grants only", func(t *testing.T) {
		p := ResolvePrincipal(newTestUser(1, "member@example.com", "user", "Analytics"))
		got, err := svc.ListDashboardsFor(ctx, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("got %d dashboards, want only dashboard 1", len(got))
		}
	})

	t.Run("email scope matches email grants only", func(t *testing.T) {
		p := ResolvePrincipal(newTestUser(2, "solo@example.com", "user", ""))
		got, err := svc.ListDashboardsFor(ctx, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != 2 {
			t.Fatalf("got %d dashboards, want only dashboard 2", len(got))
		}
	})

	t.Run("nil principal is a validation error with empty slice", func(t *testing.T) {
		got, err := svc.ListDashboardsFor(ctx, nil)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("got err %v, want ErrValidation", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("got %v, want empty non-nil slice", got)
		}
	})

	t.Run("repository failure yields empty slice and error", func(t *testing.T) {
		failing := newEntitlementService(&mockDashboardRepository{
			listWithGrantsFunc: func(ctx context.Context) ([]*ent.Dashboard, error) {
				return nil, errors.New("connection refused")
			},
		}, nil, nil, nil)

		p := ResolvePrincipal(newTestUser(1, "member@example.com", "user", "Analytics"))
		got, err := failing.ListDashboardsFor(ctx, p)
		if err == nil {
			t.Fatal("expected error")
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("got %v, want empty non-nil slice", got)
		}
	})
}

func TestGrant(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate grant conflicts", func(t *testing.T) {
		svc := newEntitlementService(nil, &mockGrantRepository{
			existsFunc: func(ctx context.Context, dashboardID uint32, subjectKind, subject string) (bool, error) {
				return true, nil
			},
		}, nil, nil)

		_, err := svc.Grant(ctx, 1, "team", "Analytics")
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("got err %v, want ErrConflict", err)
		}
	})

	t.Run("unknown subject kind is rejected", func(t *testing.T) {
		svc := newEntitlementService(nil, nil, nil, nil)
		_, err := svc.Grant(ctx, 1, "group", "Analytics")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("got err %v, want ErrValidation", err)
		}
	})

	t.Run("echoes refreshed dashboard after write", func(t *testing.T) {
		created := false
		refreshed := newTestDashboard(1, "Revenue", newTestGrant(1, "team", "Analytics"))

		svc := newEntitlementService(&mockDashboardRepository{
			getWithGrantsFunc: func(ctx context.Context, id uint32) (*ent.Dashboard, error) {
				return refreshed, nil
			},
		}, &mockGrantRepository{
			createFunc: func(ctx context.Context, dashboardID uint32, subjectKind, subject string) (*ent.AccessGrant, error) {
				created = true
				return newTestGrant(dashboardID, subjectKind, subject), nil
			},
		}, nil, nil)

		got, err := svc.Grant(ctx, 1, "team", "Analytics")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Fatal("grant was never written")
		}
		if got != refreshed {
			t.Fatal("expected the server-confirmed dashboard to be returned")
		}
	})
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()

	t.Run("missing grant is not found", func(t *testing.T) {
		svc := newEntitlementService(nil, &mockGrantRepository{
			existsFunc: func(ctx context.Context, dashboardID uint32, subjectKind, subject string) (bool, error) {
				return false, nil
			},
		}, nil, nil)

		_, err := svc.Revoke(ctx, 1, "email", "solo@example.com")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("got err %v, want ErrNotFound", err)
		}
	})

	t.Run("revoke echoes refreshed dashboard", func(t *testing.T) {
		refreshed := newTestDashboard(1, "Revenue")
		svc := newEntitlementService(&mockDashboardRepository{
			getWithGrantsFunc: func(ctx context.Context, id uint32) (*ent.Dashboard, error) {
				return refreshed, nil
			},
		}, &mockGrantRepository{
			existsFunc: func(ctx context.Context, dashboardID uint32, subjectKind, subject string) (bool, error) {
				return true, nil
			},
		}, nil, nil)

		got, err := svc.Revoke(ctx, 1, "team", "Analytics")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != refreshed {
			t.Fatal("expected the server-confirmed dashboard to be returned")
		}
	})
}

func TestCandidates(t *testing.T) {
	ctx := context.Background()

	svc := newEntitlementService(nil, &mockGrantRepository{
		listByDashboardFunc: func(ctx context.Context, dashboardID uint32) ([]*ent.AccessGrant, error) {
			return []*ent.AccessGrant{
				newTestGrant(dashboardID, "team", "Analytics"),
				newTestGrant(dashboardID, "email", "granted@example.com"),
			}, nil
		},
	}, &mockTeamRepository{
		listActiveFunc: func(ctx context.Context) ([]*ent.Team, error) {
			return []*ent.Team{
				{ID: 1, Name: "Analytics", IsActive: true},
				{ID: 2, Name: "Finance", IsActive: true},
			}, nil
		},
	}, &mockUserRepository{
		listFunc: func(ctx context.Context) ([]*ent.User, error) {
			return []*ent.User{
				newTestUser(1, "granted@example.com", "user", ""),
				newTestUser(2, "free@example.com", "user", ""),
			}, nil
		},
	})

	got, err := svc.Candidates(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Teams) != 1 || got.Teams[0] != "Finance" {
		t.Errorf("got teams %v, want [Finance]", got.Teams)
	}
	if len(got.Emails) != 1 || got.Emails[0] != "free@example.com" {
		t.Errorf("got emails %v, want [free@example.com]", got.Emails)
	}
}
