package handlers

import (
	"net/http"

	"decorly/models"
	"decorly/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes customer and admin booking endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookingSvc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: bookingSvc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	created, err := h.BookingSvc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("CreateBooking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListBookings handles GET /api/bookings?email=...
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")

	bookings, err := h.BookingSvc.ListBookings(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("ListBookings failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	b, err := h.BookingSvc.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("GetBooking failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, b)
}

// UpdateBooking handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var upd models.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if err := h.BookingSvc.UpdateBooking(c.Request.Context(), id, upd); err != nil {
		h.Logger.Error("UpdateBooking failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	if err := h.BookingSvc.DeleteBooking(c.Request.Context(), id); err != nil {
		h.Logger.Error("DeleteBooking failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// ListAdminBookings handles GET /api/admin/bookings.
func (h *BookingHandler) ListAdminBookings(c *gin.Context) {
	bookings, err := h.BookingSvc.ListAdminBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListAdminBookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// AdminUpdateBooking handles PATCH /api/admin/bookings/:id.
func (h *BookingHandler) AdminUpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var upd models.AdminBookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if err := h.BookingSvc.AdminUpdateBooking(c.Request.Context(), id, upd); err != nil {
		h.Logger.Error("AdminUpdateBooking failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

// MarkBookingPaid handles PATCH /api/admin/bookings/:id/paid.
func (h *BookingHandler) MarkBookingPaid(c *gin.Context) {
	id := c.Param("id")

	if err := h.BookingSvc.MarkBookingPaid(c.Request.Context(), id); err != nil {
		h.Logger.Error("MarkBookingPaid failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking marked as paid"})
}
