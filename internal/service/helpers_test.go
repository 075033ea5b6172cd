package service

import (
	"time"

	"dashgate/internal/db/ent"
)

func newTestUser(id uint32, email, role, team string) *ent.User {
	return &ent.User{
		ID:        id,
		Email:     email,
		Name:      "Test User",
		Role:      role,
		Team:      team,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newTestDashboard(id uint32, title string, grants ...*ent.AccessGrant) *ent.Dashboard {
	d := &ent.Dashboard{
		ID:        id,
		Title:     title,
		URL:       "https://bi.example.com/d/" + title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	d.Edges.Grants = grants
	return d
}

func newTestGrant(dashboardID uint32, kind, subject string) *ent.AccessGrant {
	return &ent.AccessGrant{
		DashboardID: dashboardID,
		SubjectKind: kind,
		Subject:     subject,
		CreatedAt:   time.Now(),
	}
}

func newTestClick(dashboardID uint32, title, email string, at time.Time) *ent.ClickEvent {
	return &ent.ClickEvent{
		DashboardID:    dashboardID,
		DashboardTitle: title,
		UserEmail:      email,
		CreatedAt:      at,
	}
}
