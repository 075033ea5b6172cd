package mapper

import (
	"time"

	"dashgate/internal/api/dto/v1/dashboard"
	"dashgate/internal/db/ent"
	"dashgate/internal/service"
)

// DashboardToResponse converts an ent Dashboard to a DashboardResponse DTO.
// Grants are included only when the edge was loaded.
func DashboardToResponse(d *ent.Dashboard) *dashboard.DashboardResponse {
	if d == nil {
		return nil
	}

	resp := &dashboard.DashboardResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		URL:         d.URL,
		Thumbnail:   d.Thumbnail,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   d.UpdatedAt.Format(time.RFC3339),
	}
	for _, g := range d.Edges.Grants {
		resp.Grants = append(resp.Grants, GrantToResponse(g))
	}
	return resp
}

// DashboardsToResponses converts a slice of ent Dashboards to DTOs
func DashboardsToResponses(dashboards []*ent.Dashboard) []*dashboard.DashboardResponse {
	result := make([]*dashboard.DashboardResponse, len(dashboards))
	for i, d := range dashboards {
		result[i] = DashboardToResponse(d)
	}
	return result
}

// GrantToResponse converts an ent AccessGrant to a GrantResponse DTO
func GrantToResponse(g *ent.AccessGrant) *dashboard.GrantResponse {
	if g == nil {
		return nil
	}

	return &dashboard.GrantResponse{
		ID:          g.ID,
		SubjectKind: g.SubjectKind,
		Subject:     g.Subject,
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
	}
}

// CandidatesToResponse converts grant candidates to their DTO
func CandidatesToResponse(c *service.GrantCandidates) *dashboard.CandidatesResponse {
	if c == nil {
		return &dashboard.CandidatesResponse{Teams: []string{}, Emails: []string{}}
	}

	return &dashboard.CandidatesResponse{
		Teams:  c.Teams,
		Emails: c.Emails,
	}
}
