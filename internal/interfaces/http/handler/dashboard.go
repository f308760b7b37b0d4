package handler

import (
	"github.com/gin-gonic/gin"

	dashboardapp "github.com/sap-portal/backend/internal/application/dashboard"
)

// DashboardHandler handles staff and director dashboard endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *dashboardapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *dashboardapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Staff returns the staff dashboard summary
func (h *DashboardHandler) Staff(c *gin.Context) {
	dashboard, err := h.dashboardService.Staff(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dashboard)
}

// Director returns the director dashboard with extended statistics
func (h *DashboardHandler) Director(c *gin.Context) {
	dashboard, err := h.dashboardService.Director(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dashboard)
}
