package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kunci-cimahi/service-booking/internal/application"
	"github.com/kunci-cimahi/service-booking/internal/response"
)

// BookingHandler handles the public booking routes: form submission and
// ticket tracking.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers the public booking routes.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("/ticket/:ticket_id", h.GetByTicket)
	}
}

// CreateBooking handles POST /api/v1/bookings. On success the response
// carries the ticket ID and the WhatsApp compose links; those links are
// best-effort and the booking stands regardless.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetByTicket handles GET /api/v1/bookings/ticket/:ticket_id, used by the
// success page and customers checking on their request.
func (h *BookingHandler) GetByTicket(c *gin.Context) {
	result, err := h.service.GetBookingByTicket(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
