package service

import (
	"sort"
	"strings"

	"dashgate/internal/db/ent"
)

// Sort keys accepted by the List operations. Unknown keys leave the
// database ordering untouched.
const (
	SortByName        = "name"
	SortByTitle       = "title"
	SortByEmail       = "email"
	SortByNewest      = "newest"
	SortByOldest      = "oldest"
	SortByMostAccess  = "access-desc"
	SortByLeastAccess = "access-asc"
)

func matchesTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// FilterDashboards keeps dashboards whose title or description contains
// term, case-insensitively. An empty term keeps everything.
func FilterDashboards(dashboards []*ent.Dashboard, term string) []*ent.Dashboard {
	if term == "" {
		return dashboards
	}
	out := dashboards[:0]
	for _, d := range dashboards {
		if matchesTerm(term, d.Title, d.Description) {
			out = append(out, d)
		}
	}
	return out
}

// SortDashboards orders dashboards in place. Access-count keys require the
// grants edge to be loaded; dashboards without the edge count as zero.
func SortDashboards(dashboards []*ent.Dashboard, sortKey string) {
	switch sortKey {
	case SortByTitle, SortByName:
		sort.SliceStable(dashboards, func(i, j int) bool {
			return strings.ToLower(dashboards[i].Title) < strings.ToLower(dashboards[j].Title)
		})
	case SortByNewest:
		sort.SliceStable(dashboards, func(i, j int) bool {
			return dashboards[i].CreatedAt.After(dashboards[j].CreatedAt)
		})
	case SortByOldest:
		sort.SliceStable(dashboards, func(i, j int) bool {
			return dashboards[i].CreatedAt.Before(dashboards[j].CreatedAt)
		})
	case SortByMostAccess:
		sort.SliceStable(dashboards, func(i, j int) bool {
			return grantCount(dashboards[i]) > grantCount(dashboards[j])
		})
	case SortByLeastAccess:
		sort.SliceStable(dashboards, func(i, j int) bool {
			return grantCount(dashboards[i]) < grantCount(dashboards[j])
		})
	}
}

func grantCount(d *ent.Dashboard) int {
	return len(d.Edges.Grants)
}

// FilterTeams keeps teams whose name or description contains term.
func FilterTeams(teams []*ent.Team, term string) []*ent.Team {
	if term == "" {
		return teams
	}
	out := teams[:0]
	for _, t := range teams {
		if matchesTerm(term, t.Name, t.Description) {
			out = append(out, t)
		}
	}
	return out
}

// SortTeams orders teams in place by the given sort key.
func SortTeams(teams []*ent.Team, sortKey string) {
	switch sortKey {
	case SortByName:
		sort.SliceStable(teams, func(i, j int) bool {
			return strings.ToLower(teams[i].Name) < strings.ToLower(teams[j].Name)
		})
	case SortByNewest:
		sort.SliceStable(teams, func(i, j int) bool {
			return teams[i].CreatedAt.After(teams[j].CreatedAt)
		})
	case SortByOldest:
		sort.SliceStable(teams, func(i, j int) bool {
			return teams[i].CreatedAt.Before(teams[j].CreatedAt)
		})
	}
}

// FilterUsers keeps users whose name or email contains term and, when role
// is non-empty, whose role matches it exactly.
func FilterUsers(users []*ent.User, term, role string) []*ent.User {
	if term == "" && role == "" {
		return users
	}
	out := users[:0]
	for _, u := range users {
		if role != "" && u.Role != role {
			continue
		}
		if matchesTerm(term, u.Name, u.Email) {
			out = append(out, u)
		}
	}
	return out
}

// SortUsers orders users in place by the given sort key.
func SortUsers(users []*ent.User, sortKey string) {
	switch sortKey {
	case SortByName:
		sort.SliceStable(users, func(i, j int) bool {
			return strings.ToLower(users[i].Name) < strings.ToLower(users[j].Name)
		})
	case SortByEmail:
		sort.SliceStable(users, func(i, j int) bool {
			return strings.ToLower(users[i].Email) < strings.ToLower(users[j].Email)
		})
	case SortByNewest:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		})
	case SortByOldest:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		})
	}
}
