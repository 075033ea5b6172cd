package utils

import (
	"net/http"

	"dashgate/internal/api/dto/common"
	"dashgate/internal/db/ent"
	"dashgate/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetGlobalLogger()
	logger.Error("%s: %v", message, err)
}

// statusForCode maps an error code to its HTTP status
func statusForCode(code common.ErrorCode) int {
	switch code {
	case common.ErrCodeValidation, common.ErrCodeBadRequest:
		return http.StatusBadRequest
	case common.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case common.ErrCodeForbidden:
		return http.StatusForbidden
	case common.ErrCodeNotFound:
		return http.StatusNotFound
	case common.ErrCodeConflict:
		return http.StatusConflict
	case common.ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError is a utility function for consistent error handling across the API.
// It handles common error types and ensures sensitive error details are only
// exposed in non-production environments.
func HandleAPIError(c *gin.Context, err error, code common.ErrorCode, message string) {
	// For record not found errors, return 404
	if err != nil && ent.IsNotFound(err) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, "Resource not found", nil))
		return
	}

	status := statusForCode(code)

	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	// In production, don't expose error details
	var errorDetails interface{}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		errorDetails = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, errorDetails))
}
