package service

import (
	"dashgate/internal/db/ent"
)

// Role is the access level carried by a principal.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ScopeKind distinguishes team-scoped from individually-scoped principals.
type ScopeKind string

const (
	ScopeTeam  ScopeKind = "team"
	ScopeEmail ScopeKind = "email"
)

// Principal is the authenticated identity making requests. Every principal
// carries exactly one entitlement scope: the team it belongs to, or its own
// email when it has no team. Entitlement resolution matches access grants
// against that single scope.
type Principal struct {
	UserID   uint32
	Email    string
	Name     string
	PhotoURL string
	Team     string
	Role     Role

	ScopeKind ScopeKind
	// Subject is the grant subject this principal matches: the team name
	// for team scope, the email for individual scope.
	Subject string
}

// ResolvePrincipal builds a Principal from a user record. The scope is
// resolved once here, at login time, not re-derived per request.
func ResolvePrincipal(u *ent.User) *Principal {
	p := &Principal{
		UserID:   u.ID,
		Email:    u.Email,
		Name:     u.Name,
		PhotoURL: u.PhotoURL,
		Team:     u.Team,
		Role:     Role(u.Role),
	}

	if u.Team != "" {
		p.ScopeKind = ScopeTeam
		p.Subject = u.Team
	} else {
		p.ScopeKind = ScopeEmail
		p.Subject = u.Email
	}

	return p
}

// IsAdmin reports whether the principal has the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
