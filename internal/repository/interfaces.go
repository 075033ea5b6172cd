package repository

import (
	"context"
	"time"

	"dashgate/internal/db/ent"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// Get returns a user by ID
	Get(ctx context.Context, id uint32) (*ent.User, error)
	// GetByFirebaseUID returns a user by Firebase UID
	GetByFirebaseUID(ctx context.Context, firebaseUID string) (*ent.User, error)
	// GetByEmail returns a user by email
	GetByEmail(ctx context.Context, email string) (*ent.User, error)
	// Create creates a new user
	Create(ctx context.Context, name, email, role, team string) (*ent.User, error)
	// Update updates an existing user's editable fields
	Update(ctx context.Context, id uint32, name, email, role, team string) (*ent.User, error)
	// Delete deletes a user by ID
	Delete(ctx context.Context, id uint32) error
	// List returns all users
	List(ctx context.Context) ([]*ent.User, error)
	// ListInactiveSince returns users whose last activity is older than the cutoff
	ListInactiveSince(ctx context.Context, cutoff time.Time) ([]*ent.User, error)
	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)
}

// TeamRepository defines the interface for team-related database operations
type TeamRepository interface {
	// Get returns a team by ID
	Get(ctx context.Context, id uint32) (*ent.Team, error)
	// GetByName returns a team by name
	GetByName(ctx context.Context, name string) (*ent.Team, error)
	// Create creates a new team
	Create(ctx context.Context, name, description string) (*ent.Team, error)
	// Update updates an existing team
	Update(ctx context.Context, id uint32, name, description string) (*ent.Team, error)
	// Deactivate soft-deletes a team by flipping is_active; the record is retained
	Deactivate(ctx context.Context, id uint32) (*ent.Team, error)
	// List returns all teams, active and inactive
	List(ctx context.Context) ([]*ent.Team, error)
	// ListActive returns only active teams
	ListActive(ctx context.Context) ([]*ent.Team, error)
}

// DashboardRepository defines the interface for dashboard-related database operations
type DashboardRepository interface {
	// Get returns a dashboard by ID
	Get(ctx context.Context, id uint32) (*ent.Dashboard, error)
	// GetWithGrants returns a dashboard with its access grants eager-loaded
	GetWithGrants(ctx context.Context, id uint32) (*ent.Dashboard, error)
	// ListWithGrants returns all dashboards with access grants eager-loaded
	// in a single batched query
	ListWithGrants(ctx context.Context) ([]*ent.Dashboard, error)
	// Create creates a new dashboard
	Create(ctx context.Context, title, description, url, thumbnail string) (*ent.Dashboard, error)
	// Update updates an existing dashboard
	Update(ctx context.Context, id uint32, title, description, url, thumbnail string) (*ent.Dashboard, error)
	// Delete hard-deletes a dashboard and its grants
	Delete(ctx context.Context, id uint32) error
}

// GrantRepository defines the interface for access grant database operations
type GrantRepository interface {
	// ListByDashboard returns all grants for a dashboard
	ListByDashboard(ctx context.Context, dashboardID uint32) ([]*ent.AccessGrant, error)
	// Exists reports whether a grant already links the dashboard to the subject
	Exists(ctx context.Context, dashboardID uint32, subjectKind, subject string) (bool, error)
	// Create creates a new grant
	Create(ctx context.Context, dashboardID uint32, subjectKind, subject string) (*ent.AccessGrant, error)
	// Delete removes the grant linking the dashboard to the subject
	Delete(ctx context.Context, dashboardID uint32, subjectKind, subject string) error
	// DeleteByDashboard removes all grants of a dashboard
	DeleteByDashboard(ctx context.Context, dashboardID uint32) error
}

// ClickRepository defines the interface for click event database operations.
// Click events are append-only; there are no update or delete operations.
type ClickRepository interface {
	// Create appends a click event
	Create(ctx context.Context, dashboardID uint32, dashboardTitle, userEmail string) (*ent.ClickEvent, error)
	// ListBetween returns click events in [start, end), oldest first
	ListBetween(ctx context.Context, start, end time.Time) ([]*ent.ClickEvent, error)
}

// SessionRepository defines the interface for session-related database operations
type SessionRepository interface {
	// Get returns a session by ID
	Get(ctx context.Context, id uint32) (*ent.Session, error)
	// GetActiveSessions returns all active sessions for a user
	GetActiveSessions(ctx context.Context, userID uint32) ([]*ent.Session, error)
	// DeleteExpired deletes all expired sessions
	DeleteExpired(ctx context.Context) (int, error)
	// DeleteStaleInactive deletes inactive sessions unused since the cutoff
	DeleteStaleInactive(ctx context.Context, cutoff time.Time) (int, error)
}

// AuthRepository defines the interface for auth-related database operations
type AuthRepository interface {
	// GetUserByFirebaseUID returns a user by Firebase UID
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*ent.User, error)
	// GetUserByEmail returns a user by email
	GetUserByEmail(ctx context.Context, email string) (*ent.User, error)
	// CreateUser creates a new user from a verified identity record
	CreateUser(ctx context.Context, firebaseUID, email, name, photoURL, ip string) (*ent.User, error)
	// AttachFirebaseUID claims an admin-provisioned user on first SSO login
	AttachFirebaseUID(ctx context.Context, user *ent.User, firebaseUID string) (*ent.User, error)
	// UpdateUserLastLogin updates user's last login information
	UpdateUserLastLogin(ctx context.Context, user *ent.User, ip string) (*ent.User, error)
	// UpdateUserLastActivity updates user's last activity timestamp
	UpdateUserLastActivity(ctx context.Context, user *ent.User) (*ent.User, error)
	// CreateSession creates a new session for a user
	CreateSession(ctx context.Context, userID uint32, token, userAgent, ipAddress string, expiresAt time.Time) (*ent.Session, error)
	// GetActiveSessionByToken returns an active, unexpired session by token
	GetActiveSessionByToken(ctx context.Context, token string) (*ent.Session, error)
	// UpdateSessionLastUsed updates session's last used timestamp and optionally extends expiration
	UpdateSessionLastUsed(ctx context.Context, session *ent.Session, newExpiration *time.Time) (*ent.Session, error)
	// InvalidateSession marks a session as inactive
	InvalidateSession(ctx context.Context, token string) error
	// GetSessionOwner returns the owner of a session
	GetSessionOwner(ctx context.Context, session *ent.Session) (*ent.User, error)
}
