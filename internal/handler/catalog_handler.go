package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kunci-cimahi/service-booking/internal/application"
	"github.com/kunci-cimahi/service-booking/internal/auth"
	serviceDomain "github.com/kunci-cimahi/service-booking/internal/domain/service"
	"github.com/kunci-cimahi/service-booking/internal/middleware"
	"github.com/kunci-cimahi/service-booking/internal/response"
)

// CatalogHandler handles the service price list: public listing plus admin
// CRUD.
type CatalogHandler struct {
	service *application.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	r.GET("/api/v1/services", h.ListServices)

	admin := r.Group("/api/v1/admin/services")
	admin.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(auth.RoleAdmin))
	{
		admin.POST("", h.CreateService)
		admin.PUT("/:id", h.UpdateService)
		admin.DELETE("/:id", h.DeleteService)
	}
}

// ListServices handles GET /api/v1/services. Default ordering is category
// then price ascending; ?order=title sorts alphabetically instead.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	ordering := serviceDomain.OrderByCategoryPrice
	if c.Query("order") == "title" {
		ordering = serviceDomain.OrderByTitle
	}

	services, err := h.service.List(c.Request.Context(), ordering)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, services)
}

// CreateService handles POST /api/v1/admin/services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var fields serviceDomain.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	svc, err := h.service.Create(c.Request.Context(), fields)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, svc)
}

// UpdateService handles PUT /api/v1/admin/services/:id.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid service ID")
		return
	}

	var fields serviceDomain.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	svc, err := h.service.Update(c.Request.Context(), id, fields)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, svc)
}

// DeleteService handles DELETE /api/v1/admin/services/:id.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid service ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
