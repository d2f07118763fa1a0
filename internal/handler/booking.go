package handler

import (
	"errors"
	"net/http"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles mock booking HTTP requests
type BookingHandler struct {
	booking *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(booking *service.BookingService) *BookingHandler {
	return &BookingHandler{booking: booking}
}

// Slots handles GET /api/v1/bookings/slots
func (h *BookingHandler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.booking.Slots()})
}

// Book handles POST /api/v1/bookings
func (h *BookingHandler) Book(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	confirmation, err := h.booking.Book(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrDoctorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, confirmation)
}
