package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"clinic-dashboard-server/internal/schedule"
	"clinic-dashboard-server/internal/utils"
)

// AnalyticsHandler serves the analytics page data.
type AnalyticsHandler struct {
	Svc *schedule.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc *schedule.Service) *AnalyticsHandler {
	return &AnalyticsHandler{Svc: svc}
}

// GetReport returns status and type breakdowns plus the weekly trend.
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	report, err := h.Svc.Analytics(c.Request.Context(), time.Now())
	if err != nil {
		utils.InternalServerError(c, "Failed to compute analytics")
		return
	}

	utils.Success(c, "Analytics fetched successfully", report)
}
