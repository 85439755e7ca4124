package handlers

import (
	"net/http"

	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/middleware"
	"tradelab_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	*BaseHandler
	newsletterService services.NewsletterService
}

func NewNewsletterHandler(base *BaseHandler, newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		BaseHandler:       base,
		newsletterService: newsletterService,
	}
}

func (h *NewsletterHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/newsletter")
	public.Use(middleware.OptionalAuth())
	{
		public.POST("/subscribe", h.Subscribe)
	}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	var req dto.SubscribeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	subscriber, err := h.newsletterService.Subscribe(caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"email":  subscriber.Email,
		"status": subscriber.Status,
	})
}
