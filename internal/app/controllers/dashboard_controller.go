package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/services"
	"github.com/hrmslite/backend/internal/middleware"
)

// DashboardController handles the summary dashboard endpoint
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard returns the aggregate summary
// @Summary Get dashboard summary
// @Description Aggregates employee and attendance counts with a per-employee breakdown
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.Response{data=dto.DashboardSummary} "Dashboard data fetched successfully"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	summary, err := c.dashboardService.Summary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		dto.NewSuccessResponse(summary, "Dashboard data fetched successfully", http.StatusOK))
}
