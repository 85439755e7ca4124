package handlers

import (
	"net/http"

	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/middleware"
	"tradelab_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("")
	public.Use(middleware.OptionalAuth())
	{
		public.POST("/contact", h.Submit)
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	var req dto.ContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	submission, err := h.contactService.Submit(caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     submission.ID,
		"status": submission.Status,
	})
}
