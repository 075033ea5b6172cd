package handlers

import (
	"dashgate/internal/api/dto/common"
	"dashgate/internal/api/dto/v1/user"
	"dashgate/internal/api/mapper"
	"dashgate/internal/logging"
	"dashgate/internal/service"
	"dashgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the admin user panel and the inactive-user cleanup.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all users. Supports ?q= search, ?role= filtering and
// ?sort= ordering.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context(), c.Query("q"), c.Query("role"), c.Query("sort"))
	if err != nil {
		handleServiceError(c, err, "Failed to list users")
		return
	}

	utils.HandleSuccess(c, user.ListUsersResponse{Users: mapper.UsersToUserResponses(users)})
}

// Create provisions a user ahead of their first SSO login.
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeValidation, "Invalid user payload")
		return
	}

	u, err := h.userService.Create(c.Request.Context(), req.Name, req.Email, req.Role, req.Team)
	if err != nil {
		handleServiceError(c, err, "Failed to create user")
		return
	}

	utils.HandleCreated(c, mapper.UserToUserResponse(u))
}

// Update rewrites a user's editable fields.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeValidation, "Invalid user payload")
		return
	}

	u, err := h.userService.Update(c.Request.Context(), id, req.Name, req.Email, req.Role, req.Team)
	if err != nil {
		handleServiceError(c, err, "Failed to update user")
		return
	}

	utils.HandleSuccess(c, mapper.UserToUserResponse(u))
}

// Delete removes a user. Their sessions go with them.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete user")
		return
	}

	utils.HandleMessage(c, "User successfully deleted")
}

// ListInactive returns users idle long enough to qualify for cleanup.
func (h *UserHandler) ListInactive(c *gin.Context) {
	users, err := h.userService.ListInactive(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list inactive users")
		return
	}

	utils.HandleSuccess(c, user.ListUsersResponse{Users: mapper.UsersToUserResponses(users)})
}

// DeleteInactive sweeps all inactive users and reports how many were removed.
func (h *UserHandler) DeleteInactive(c *gin.Context) {
	deleted, err := h.userService.DeleteAllInactive(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to delete inactive users")
		return
	}

	logging.GetGlobalLogger().Info("Inactive user sweep removed %d users", deleted)
	utils.HandleSuccess(c, user.CleanupResponse{Deleted: deleted})
}
