package handlers

import (
	"dashgate/internal/api/dto/common"
	"dashgate/internal/api/dto/v1/team"
	"dashgate/internal/api/mapper"
	"dashgate/internal/service"
	"dashgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves the admin team panel.
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler creates a new TeamHandler instance
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List returns all teams. Supports ?q= search and ?sort= ordering.
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamService.List(c.Request.Context(), c.Query("q"), c.Query("sort"))
	if err != nil {
		handleServiceError(c, err, "Failed to list teams")
		return
	}

	utils.HandleSuccess(c, gin.H{"teams": mapper.TeamsToTeamResponses(teams)})
}

// Create creates a team.
func (h *TeamHandler) Create(c *gin.Context) {
	var req team.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeValidation, "Invalid team payload")
		return
	}

	t, err := h.teamService.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		handleServiceError(c, err, "Failed to create team")
		return
	}

	utils.HandleCreated(c, mapper.TeamToTeamResponse(t))
}

// Update renames a team or rewrites its description.
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req team.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeValidation, "Invalid team payload")
		return
	}

	t, err := h.teamService.Update(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		handleServiceError(c, err, "Failed to update team")
		return
	}

	utils.HandleSuccess(c, mapper.TeamToTeamResponse(t))
}

// Delete deactivates a team. The record stays so existing grants keep
// resolving by name.
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	t, err := h.teamService.Deactivate(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to deactivate team")
		return
	}

	utils.HandleSuccess(c, mapper.TeamToTeamResponse(t))
}
