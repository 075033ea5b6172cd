package service

import "testing"

func TestEvaluateRoute(t *testing.T) {
	admin := &Principal{UserID: 1, Email: "admin@example.com", Role: RoleAdmin}
	member := &Principal{UserID: 2, Email: "user@example.com", Role: RoleUser}

	tests := []struct {
		name      string
		required  Role
		principal *Principal
		want      Decision
	}{
		{
			name:      "nil principal goes to login",
			required:  RoleUser,
			principal: nil,
			want:      DecisionRedirectLogin,
		},
		{
			name:      "empty email goes to login even for admin routes",
			required:  RoleAdmin,
			principal: &Principal{UserID: 3, Role: RoleAdmin},
			want:      DecisionRedirectLogin,
		},
		{
			name:      "user on user route is allowed",
			required:  RoleUser,
			principal: member,
			want:      DecisionAllow,
		},
		{
			name:      "user on admin route goes home",
			required:  RoleAdmin,
			principal: member,
			want:      DecisionRedirectHome,
		},
		{
			name:      "admin on admin route is allowed",
			required:  RoleAdmin,
			principal: admin,
			want:      DecisionAllow,
		},
		{
			name:      "admin on user route is allowed",
			required:  RoleUser,
			principal: admin,
			want:      DecisionAllow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateRoute(tt.required, tt.principal); got != tt.want {
				t.Errorf("EvaluateRoute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateLoginRoute(t *testing.T) {
	tests := []struct {
		name      string
		principal *Principal
		want      Decision
	}{
		{
			name:      "anonymous caller may see login",
			principal: nil,
			want:      DecisionAllow,
		},
		{
			name:      "email-less principal may see login",
			principal: &Principal{UserID: 1},
			want:      DecisionAllow,
		},
		{
			name:      "authenticated caller goes home",
			principal: &Principal{UserID: 1, Email: "user@example.com", Role: RoleUser},
			want:      DecisionRedirectHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateLoginRoute(tt.principal); got != tt.want {
				t.Errorf("EvaluateLoginRoute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolvePrincipalScope(t *testing.T) {
	t.Run("team member gets team scope", func(t *testing.T) {
		p := ResolvePrincipal(newTestUser(1, "a@example.com", "user", "Analytics"))
		if p.ScopeKind != ScopeTeam || p.Subject != "Analytics" {
			t.Errorf("got scope %s:%s, want team:Analytics", p.ScopeKind, p.Subject)
		}
	})

	t.Run("teamless user gets email scope", func(t *testing.T) {
		p := ResolvePrincipal(newTestUser(2, "b@example.com", "admin", ""))
		if p.ScopeKind != ScopeEmail || p.Subject != "b@example.com" {
			t.Errorf("got scope %s:%s, want email:b@example.com", p.ScopeKind, p.Subject)
		}
	})
}
