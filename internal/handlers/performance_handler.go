package handlers

import (
	"net/http"

	"tradelab_backend/internal/middleware"
	"tradelab_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PerformanceHandler - чтение собственной торговой статистики.
// Пишут записи менторы через внутренние процессы, не клиентский HTTP.
type PerformanceHandler struct {
	*BaseHandler
	performanceService services.PerformanceService
}

func NewPerformanceHandler(base *BaseHandler, performanceService services.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{
		BaseHandler:        base,
		performanceService: performanceService,
	}
}

func (h *PerformanceHandler) RegisterRoutes(r *gin.RouterGroup) {
	performance := r.Group("/performance")
	performance.Use(middleware.RequireAuth())
	{
		performance.GET("", h.ListMyPerformance)
		performance.GET("/:month", h.GetMonth)
	}
}

func (h *PerformanceHandler) ListMyPerformance(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	records, err := h.performanceService.ListOwn(caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *PerformanceHandler) GetMonth(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	month, err := ParseQueryMonth(c, "month")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	record, err := h.performanceService.GetOwnMonth(caller, month)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
