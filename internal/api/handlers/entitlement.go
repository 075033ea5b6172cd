package handlers

import (
	"dashgate/internal/api/dto/common"
	"dashgate/internal/api/dto/v1/dashboard"
	"dashgate/internal/api/mapper"
	"dashgate/internal/api/middleware"
	"dashgate/internal/service"
	"dashgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// EntitlementHandler serves the user-facing dashboard listing, click
// tracking, and the admin grant management endpoints.
type EntitlementHandler struct {
	entitlementService service.EntitlementService
	dashboardService   service.DashboardService
}

// NewEntitlementHandler creates a new EntitlementHandler instance
func NewEntitlementHandler(entitlementService service.EntitlementService, dashboardService service.DashboardService) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementService: entitlementService,
		dashboardService:   dashboardService,
	}
}

// MyDashboards returns the dashboards the caller's scope is granted.
// Grants are stripped from the response; callers only see their own
// entitlement, never the full access list.
func (h *EntitlementHandler) MyDashboards(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Authentication required")
		return
	}

	dashboards, err := h.entitlementService.ListDashboardsFor(c.Request.Context(), principal)
	if err != nil {
		handleServiceError(c, err, "Failed to resolve entitlements")
		return
	}

	responses := make([]*dashboard.DashboardResponse, len(dashboards))
	for i, d := range dashboards {
		resp := mapper.DashboardToResponse(d)
		resp.Grants = nil
		responses[i] = resp
	}

	utils.HandleSuccess(c, gin.H{"dashboards": responses})
}

// TrackClick records that the caller opened a dashboard.
func (h *EntitlementHandler) TrackClick(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.dashboardService.TrackClick(c.Request.Context(), id, principal.Email); err != nil {
		handleServiceError(c, err, "Failed to record click")
		return
	}

	utils.HandleNoContent(c)
}

// ListGrants returns the access list of a dashboard.
func (h *EntitlementHandler) ListGrants(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	grants, err := h.entitlementService.ListGrants(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to list grants")
		return
	}

	responses := make([]*dashboard.GrantResponse, len(grants))
	for i, g := range grants {
		responses[i] = mapper.GrantToResponse(g)
	}

	utils.HandleSuccess(c, gin.H{"grants": responses})
}

// Grant adds a subject to a dashboard's access list and returns the
// server-confirmed dashboard.
func (h *EntitlementHandler) Grant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dashboard.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeValidation, "Invalid grant payload")
		return
	}

	d, err := h.entitlementService.Grant(c.Request.Context(), id, req.SubjectKind, req.Subject)
	if err != nil {
		handleServiceError(c, err, "Failed to grant access")
		return
	}

	utils.HandleCreated(c, mapper.DashboardToResponse(d))
}

// Revoke removes a subject from a dashboard's access list and returns the
// server-confirmed dashboard.
func (h *EntitlementHandler) Revoke(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dashboard.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeValidation, "Invalid grant payload")
		return
	}

	d, err := h.entitlementService.Revoke(c.Request.Context(), id, req.SubjectKind, req.Subject)
	if err != nil {
		handleServiceError(c, err, "Failed to revoke access")
		return
	}

	utils.HandleSuccess(c, mapper.DashboardToResponse(d))
}

// Candidates lists the teams and emails a dashboard can still be shared with.
func (h *EntitlementHandler) Candidates(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	candidates, err := h.entitlementService.Candidates(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to list grant candidates")
		return
	}

	utils.HandleSuccess(c, mapper.CandidatesToResponse(candidates))
}
