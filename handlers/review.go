package handlers

import (
	"net/http"

	"artisanhub/middleware"
	"artisanhub/services/review"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review submission and lookup over HTTP.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// Submit handles POST /api/reviews (student only).
func (h *ReviewHandler) Submit(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// Rating is not bound as required: a zero rating must reach the service so
	// it fails with the range error, not a generic binding error.
	var input struct {
		ArtisanID  string `json:"artisanId" binding:"required"`
		BookingID  string `json:"bookingId" binding:"required"`
		Rating     int    `json:"rating"`
		ReviewText string `json:"reviewText" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	rev, err := h.Service.Submit(c.Request.Context(), actor.ID, input.BookingID, input.ArtisanID, input.Rating, input.ReviewText)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully", "review": rev})
}

// ListForArtisan handles GET /api/reviews/:artisanId (public).
func (h *ReviewHandler) ListForArtisan(c *gin.Context) {
	reviews, err := h.Service.ListByArtisan(c.Param("artisanId"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListMineStudent handles GET /api/reviews/student/me (student only).
func (h *ReviewHandler) ListMineStudent(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reviews, err := h.Service.ListByStudent(actor.ID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListMineArtisan handles GET /api/reviews/artisan/me (artisan only).
func (h *ReviewHandler) ListMineArtisan(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reviews, err := h.Service.ListByArtisan(actor.ID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
