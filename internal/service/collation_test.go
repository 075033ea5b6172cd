package service

import (
	"testing"
	"time"

	"dashgate/internal/db/ent"
)

func TestFilterDashboards(t *testing.T) {
	dashboards := []*ent.Dashboard{
		newTestDashboard(1, "Revenue Overview"),
		newTestDashboard(2, "Churn"),
		newTestDashboard(3, "Weekly revenue detail"),
	}
	dashboards[1].Description = "revenue at risk"

	tests := []struct {
		name    string
		term    string
		wantIDs []uint32
	}{
		{name: "empty term keeps all", term: "", wantIDs: []uint32{1, 2, 3}},
		{name: "matches title case-insensitively", term: "REVENUE", wantIDs: []uint32{1, 2, 3}},
		{name: "matches description", term: "at risk", wantIDs: []uint32{2}},
		{name: "no match", term: "finance", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]*ent.Dashboard(nil), dashboards...)
			got := FilterDashboards(in, tt.term)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d dashboards, want %d", len(got), len(tt.wantIDs))
			}
			for i, d := range got {
				if d.ID != tt.wantIDs[i] {
					t.Errorf("position %d: got id %d, want %d", i, d.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestSortDashboards(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	build := func() []*ent.Dashboard {
		a := newTestDashboard(1, "beta", newTestGrant(1, "team", "A"))
		a.CreatedAt = base.AddDate(0, 0, 2)
		b := newTestDashboard(2, "Alpha")
		b.CreatedAt = base
		c := newTestDashboard(3, "gamma", newTestGrant(3, "team", "A"), newTestGrant(3, "email", "x@y.z"))
		c.CreatedAt = base.AddDate(0, 0, 1)
		return []*ent.Dashboard{a, b, c}
	}

	tests := []struct {
		name    string
		sortKey string
		wantIDs []uint32
	}{
		{name: "by title ignores case", sortKey: SortByTitle, wantIDs: []uint32{2, 1, 3}},
		{name: "newest first", sortKey: SortByNewest, wantIDs: []uint32{1, 3, 2}},
		{name: "oldest first", sortKey: SortByOldest, wantIDs: []uint32{2, 3, 1}},
		{name: "most granted first", sortKey: SortByMostAccess, wantIDs: []uint32{3, 1, 2}},
		{name: "least granted first", sortKey: SortByLeastAccess, wantIDs: []uint32{2, 1, 3}},
		{name: "unknown key keeps order", sortKey: "bogus", wantIDs: []uint32{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboards := build()
			SortDashboards(dashboards, tt.sortKey)
			for i, d := range dashboards {
				if d.ID != tt.wantIDs[i] {
					t.Errorf("position %d: got id %d, want %d", i, d.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterUsers(t *testing.T) {
	users := []*ent.User{
		newTestUser(1, "ana@example.com", "admin", "Analytics"),
		newTestUser(2, "bob@example.com", "user", ""),
		newTestUser(3, "carol@example.com", "user", "Analytics"),
	}
	users[0].Name = "Ana"
	users[1].Name = "Bob"
	users[2].Name = "Carol"

	t.Run("role filter is exact", func(t *testing.T) {
		got := FilterUsers(append([]*ent.User(nil), users...), "", "admin")
		if len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("got %v, want only user 1", got)
		}
	})

	t.Run("term and role combine", func(t *testing.T) {
		got := FilterUsers(append([]*ent.User(nil), users...), "carol", "user")
		if len(got) != 1 || got[0].ID != 3 {
			t.Fatalf("got %v, want only user 3", got)
		}
	})
}

func TestSortUsers(t *testing.T) {
	users := []*ent.User{
		newTestUser(1, "zed@example.com", "user", ""),
		newTestUser(2, "ana@example.com", "user", ""),
	}
	users[0].Name = "Zed"
	users[1].Name = "Ana"

	SortUsers(users, SortByEmail)
	if users[0].ID != 2 {
		t.Errorf("email sort: got first id %d, want 2", users[0].ID)
	}

	SortUsers(users, SortByName)
	if users[0].Name != "Ana" {
		t.Errorf("name sort: got first %q, want Ana", users[0].Name)
	}
}
