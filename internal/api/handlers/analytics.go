package handlers

import (
	"dashgate/internal/service"
	"dashgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the admin click-analytics panel.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Clicks returns the aggregated click report for ?range= (7d, 30d or 90d,
// defaulting to 30d).
func (h *AnalyticsHandler) Clicks(c *gin.Context) {
	report, err := h.analyticsService.Report(c.Request.Context(), c.Query("range"))
	if err != nil {
		handleServiceError(c, err, "Failed to build click report")
		return
	}

	utils.HandleSuccess(c, report)
}
