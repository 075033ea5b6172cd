package mapper

import (
	"time"

	"dashgate/internal/api/dto/v1/auth"
	"dashgate/internal/api/dto/v1/user"
	"dashgate/internal/db/ent"
	"dashgate/internal/service"
)

// UserToUserResponse converts an ent User to a UserResponse DTO
func UserToUserResponse(u *ent.User) *user.UserResponse {
	if u == nil {
		return nil
	}

	return &user.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		Team:         u.Team,
		IsActive:     u.IsActive,
		LastLogin:    formatNillableTime(u.LastLogin),
		LastActivity: formatNillableTime(u.LastActivity),
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    u.UpdatedAt.Format(time.RFC3339),
	}
}

// UsersToUserResponses converts a slice of ent Users to UserResponse DTOs
func UsersToUserResponses(users []*ent.User) []*user.UserResponse {
	result := make([]*user.UserResponse, len(users))
	for i, u := range users {
		result[i] = UserToUserResponse(u)
	}
	return result
}

// PrincipalToResponse converts a resolved Principal to its DTO
func PrincipalToResponse(p *service.Principal) *auth.PrincipalResponse {
	if p == nil {
		return nil
	}

	return &auth.PrincipalResponse{
		ID:        p.UserID,
		Email:     p.Email,
		Name:      p.Name,
		PhotoURL:  p.PhotoURL,
		Team:      p.Team,
		Role:      string(p.Role),
		ScopeKind: string(p.ScopeKind),
		Subject:   p.Subject,
	}
}

func formatNillableTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
