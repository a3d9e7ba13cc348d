package handler

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kunci-cimahi/service-booking/internal/application"
	"github.com/kunci-cimahi/service-booking/internal/auth"
	"github.com/kunci-cimahi/service-booking/internal/middleware"
	"github.com/kunci-cimahi/service-booking/internal/response"
)

// AdminBookingHandler handles the dashboard's booking management routes.
type AdminBookingHandler struct {
	service *application.BookingService
}

// NewAdminBookingHandler creates a new AdminBookingHandler.
func NewAdminBookingHandler(service *application.BookingService) *AdminBookingHandler {
	return &AdminBookingHandler{service: service}
}

// RegisterRoutes registers the admin booking routes. Everything under the
// admin prefix requires an authenticated admin session.
func (h *AdminBookingHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/bookings", h.ListBookings)
		admin.GET("/bookings/:id", h.GetBooking)
		admin.PATCH("/bookings/:id/status", h.UpdateStatus)
		admin.PATCH("/bookings/:id/price", h.UpdatePrice)
		admin.DELETE("/bookings/:id", h.DeleteBooking)
		admin.GET("/stats", h.GetStats)
	}
}

// ListBookings handles GET /api/v1/admin/bookings with optional from/to
// RFC 3339 query parameters and a limit.
func (h *AdminBookingHandler) ListBookings(c *gin.Context) {
	var filter application.ListBookingsFilter

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "invalid from timestamp")
			return
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "invalid to timestamp")
			return
		}
		filter.To = &t
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.BadRequest(c, "invalid limit")
			return
		}
		filter.Limit = limit
	}

	result, err := h.service.ListBookings(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBooking handles GET /api/v1/admin/bookings/:id.
func (h *AdminBookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateStatus handles PATCH /api/v1/admin/bookings/:id/status.
func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdatePrice handles PATCH /api/v1/admin/bookings/:id/price. Non-numeric
// input fails JSON binding and never reaches the store.
func (h *AdminBookingHandler) UpdatePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	var body struct {
		Price json.Number `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	price, err := body.Price.Int64()
	if err != nil {
		response.BadRequest(c, "price must be a whole number")
		return
	}

	result, err := h.service.UpdatePrice(c.Request.Context(), id, price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBooking handles DELETE /api/v1/admin/bookings/:id. Permanent; the
// dashboard asks for confirmation before calling.
func (h *AdminBookingHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetStats handles GET /api/v1/admin/stats.
func (h *AdminBookingHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, stats)
}
