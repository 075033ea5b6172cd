package handlers

import (
	"dashgate/internal/api/dto/common"
	"dashgate/internal/api/dto/v1/dashboard"
	"dashgate/internal/api/mapper"
	"dashgate/internal/service"
	"dashgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin dashboard panel.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// List returns all dashboards with their access lists. Supports ?q= search
// and ?sort= ordering.
func (h *DashboardHandler) List(c *gin.Context) {
	dashboards, err := h.dashboardService.List(c.Request.Context(), c.Query("q"), c.Query("sort"))
	if err != nil {
		handleServiceError(c, err, "Failed to list dashboards")
		return
	}

	utils.HandleSuccess(c, gin.H{"dashboards": mapper.DashboardsToResponses(dashboards)})
}

// Get returns one dashboard with its access list.
func (h *DashboardHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	d, err := h.dashboardService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeNotFound, "Dashboard not found")
		return
	}

	utils.HandleSuccess(c, mapper.DashboardToResponse(d))
}

// Create registers a dashboard.
func (h *DashboardHandler) Create(c *gin.Context) {
	var req dashboard.CreateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeValidation, "Invalid dashboard payload")
		return
	}

	d, err := h.dashboardService.Create(c.Request.Context(), req.Title, req.Description, req.URL, req.Thumbnail)
	if err != nil {
		handleServiceError(c, err, "Failed to create dashboard")
		return
	}

	utils.HandleCreated(c, mapper.DashboardToResponse(d))
}

// Update rewrites a dashboard's fields and echoes the stored record back.
func (h *DashboardHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dashboard.UpdateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeValidation, "Invalid dashboard payload")
		return
	}

	d, err := h.dashboardService.Update(c.Request.Context(), id, req.Title, req.Description, req.URL, req.Thumbnail)
	if err != nil {
		handleServiceError(c, err, "Failed to update dashboard")
		return
	}

	utils.HandleSuccess(c, mapper.DashboardToResponse(d))
}

// Delete removes a dashboard and its grants.
func (h *DashboardHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.dashboardService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete dashboard")
		return
	}

	utils.HandleMessage(c, "Dashboard successfully deleted")
}
