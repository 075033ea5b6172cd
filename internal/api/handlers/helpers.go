package handlers

import (
	"errors"
	"strconv"

	"dashgate/internal/api/dto/common"
	"dashgate/internal/service"
	"dashgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps service-layer sentinel errors onto the shared
// error envelope. Unrecognized errors become a 500 with the given message.
func handleServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		utils.HandleAPIError(c, err, common.ErrCodeValidation, message)
	case errors.Is(err, service.ErrConflict):
		utils.HandleAPIError(c, err, common.ErrCodeConflict, message)
	case errors.Is(err, service.ErrNotFound):
		utils.HandleAPIError(c, err, common.ErrCodeNotFound, message)
	default:
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, message)
	}
}

// parseIDParam parses the :id route parameter as a uint32.
func parseIDParam(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint32(id), true
}
