package handlers

import (
	"net/http"

	"tradelab_backend/internal/middleware"
	"tradelab_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler отдает публичный каталог курсов и менторских программ.
type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Каталог публичный, но identity (если есть) все равно поднимаем -
	// policy-предикат active-only одинаков для анонима и клиента
	public := r.Group("")
	public.Use(middleware.OptionalAuth())
	{
		public.GET("/courses", h.ListCourses)
		public.GET("/courses/:id", h.GetCourse)
		public.GET("/mentorships", h.ListMentorships)
		public.GET("/mentorships/:id", h.GetMentorship)
	}
}

func (h *CatalogHandler) ListCourses(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	courses, err := h.catalogService.ListCourses(caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *CatalogHandler) GetCourse(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	course, err := h.catalogService.GetCourse(caller, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CatalogHandler) ListMentorships(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	programs, err := h.catalogService.ListMentorships(caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mentorships": programs})
}

func (h *CatalogHandler) GetMentorship(c *gin.Context) {
	caller := middleware.GetIdentity(c)

	program, err := h.catalogService.GetMentorship(caller, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, program)
}
