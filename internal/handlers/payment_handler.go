package handlers

import (
	"net/http"

	"tradelab_backend/internal/middleware"
	"tradelab_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PaymentHandler - чтение собственной истории платежей. Запись платежей
// делает интеграция со шлюзом, а не клиентский HTTP.
type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	payments.Use(middleware.RequireAuth())
	{
		payments.GET("", h.ListMyPayments)
		payments.GET("/:id", h.GetPayment)
	}
}

func (h *PaymentHandler) ListMyPayments(c *gin.Context) {
	caller := middleware.GetIdentity(c)
	limit, offset := ParsePagination(c)

	payments, err := h.paymentService.ListOwn(caller, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	payment, err := h.paymentService.Get(caller, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}
