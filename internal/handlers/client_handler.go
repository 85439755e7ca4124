package handlers

import (
	"net/http"

	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/middleware"
	"tradelab_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	*BaseHandler
	clientService services.ClientService
}

func NewClientHandler(base *BaseHandler, clientService services.ClientService) *ClientHandler {
	return &ClientHandler{
		BaseHandler:   base,
		clientService: clientService,
	}
}

func (h *ClientHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Регистрация открыта: identity выдает внешний провайдер,
	// здесь заводится только строка клиента
	r.POST("/clients", h.Register)

	me := r.Group("/clients/me")
	me.Use(middleware.RequireAuth())
	{
		me.GET("", h.GetSelf)
		me.PATCH("", h.UpdateSelf)
	}
}

func (h *ClientHandler) Register(c *gin.Context) {
	var req dto.CreateClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clientService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) GetSelf(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	client, err := h.clientService.GetSelf(caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) UpdateSelf(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	var req dto.UpdateClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clientService.UpdateSelf(caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}
