package handlers

import (
	"dashgate/internal/api/dto/common"
	"dashgate/internal/db/ent"
	"dashgate/internal/db/ent/user"
	"dashgate/internal/utils"
	"dashgate/internal/version"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	db *ent.Client
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *ent.Client) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check verifies database connectivity with a cheap query.
func (h *HealthHandler) Check(c *gin.Context) {
	if _, err := h.db.User.Query().Where(user.IDGT(0)).Limit(1).Count(c.Request.Context()); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Database connection error")
		return
	}

	utils.HandleSuccess(c, gin.H{
		"status":  "ok",
		"version": version.GetVersionString(),
	})
}
