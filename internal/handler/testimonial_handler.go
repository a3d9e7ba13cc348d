package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kunci-cimahi/service-booking/internal/application"
	"github.com/kunci-cimahi/service-booking/internal/auth"
	"github.com/kunci-cimahi/service-booking/internal/middleware"
	"github.com/kunci-cimahi/service-booking/internal/response"
)

// TestimonialHandler handles public testimonial listing and admin
// moderation.
type TestimonialHandler struct {
	service *application.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler.
func NewTestimonialHandler(service *application.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// RegisterRoutes registers the testimonial routes.
func (h *TestimonialHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	r.GET("/api/v1/testimonials", h.ListActive)

	admin := r.Group("/api/v1/admin/testimonials")
	admin.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(auth.RoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PATCH("/:id/active", h.SetActive)
		admin.DELETE("/:id", h.Delete)
	}
}

// ListActive handles GET /api/v1/testimonials, visible entries only.
func (h *TestimonialHandler) ListActive(c *gin.Context) {
	testimonials, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, testimonials)
}

// ListAll handles GET /api/v1/admin/testimonials, including hidden entries.
func (h *TestimonialHandler) ListAll(c *gin.Context) {
	testimonials, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, testimonials)
}

// Create handles POST /api/v1/admin/testimonials.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req application.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, t)
}

// SetActive handles PATCH /api/v1/admin/testimonials/:id/active.
func (h *TestimonialHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid testimonial ID")
		return
	}

	var body struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SetActive(c.Request.Context(), id, *body.Active); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Delete handles DELETE /api/v1/admin/testimonials/:id.
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid testimonial ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
