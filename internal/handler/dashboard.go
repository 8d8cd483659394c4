package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jdbernardo16/project-manager/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GET /dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	view, err := h.dashboardService.Get(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, view)
}
