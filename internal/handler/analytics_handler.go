package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/RuslanKralin/e-commerce-store/internal/service"
	"github.com/RuslanKralin/e-commerce-store/pkg/response"
)

// AnalyticsHandler handles admin analytics HTTP endpoints
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary handles GET /analytics
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.analyticsService.GetSummary(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, summary)
}
