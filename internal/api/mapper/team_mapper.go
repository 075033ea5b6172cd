package mapper

import (
	"time"

	"dashgate/internal/api/dto/v1/team"
	"dashgate/internal/db/ent"
)

// TeamToTeamResponse converts an ent Team to a TeamResponse DTO
func TeamToTeamResponse(t *ent.Team) *team.TeamResponse {
	if t == nil {
		return nil
	}

	return &team.TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// TeamsToTeamResponses converts a slice of ent Teams to TeamResponse DTOs
func TeamsToTeamResponses(teams []*ent.Team) []*team.TeamResponse {
	result := make([]*team.TeamResponse, len(teams))
	for i, t := range teams {
		result[i] = TeamToTeamResponse(t)
	}
	return result
}
