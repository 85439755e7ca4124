package handlers

import (
	"net/http"

	"tradelab_backend/internal/middleware"
	"tradelab_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ReportingHandler выставляет три derived view поверх хранилища.
type ReportingHandler struct {
	*BaseHandler
	reportingService services.ReportingService
}

func NewReportingHandler(base *BaseHandler, reportingService services.ReportingService) *ReportingHandler {
	return &ReportingHandler{
		BaseHandler:      base,
		reportingService: reportingService,
	}
}

func (h *ReportingHandler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	reports.Use(middleware.RequireAuth())
	{
		reports.GET("/enrollment", h.GetEnrollment)
		reports.GET("/revenue/monthly", h.GetMonthlyRevenue)
		reports.GET("/sessions/upcoming", h.GetUpcomingSessions)
	}
}

func (h *ReportingHandler) GetEnrollment(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	rows, err := h.reportingService.ActiveClientEnrollment(caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"enrollment": rows})
}

func (h *ReportingHandler) GetMonthlyRevenue(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	rows, err := h.reportingService.MonthlyRevenue(caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"revenue": rows})
}

func (h *ReportingHandler) GetUpcomingSessions(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	rows, err := h.reportingService.UpcomingSessions(caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": rows})
}
