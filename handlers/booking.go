package handlers

import (
	"net/http"
	"time"

	"artisanhub/middleware"
	"artisanhub/models"
	"artisanhub/services/booking"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// Create handles POST /api/bookings (student only).
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		ArtisanID     string     `json:"artisanId" binding:"required"`
		JobDetails    string     `json:"jobDetails" binding:"required"`
		ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.Create(c.Request.Context(), actor.ID, input.ArtisanID, input.JobDetails, input.ScheduledDate)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "booking": b})
}

// Transition handles PUT /api/bookings/artisan/:bookingId (artisan only).
func (h *BookingHandler) Transition(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	bookingID := c.Param("bookingId")

	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.Transition(c.Request.Context(), actor.ID, bookingID, input.Status)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated", "booking": b})
}

// ListForStudent handles GET /api/bookings/student (student only).
func (h *BookingHandler) ListForStudent(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.Service.ListByStudent(actor.ID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListForArtisan handles GET /api/bookings/artisan (artisan only).
func (h *BookingHandler) ListForArtisan(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.Service.ListByArtisan(actor.ID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
