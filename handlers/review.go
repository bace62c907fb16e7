package handlers

import (
	"net/http"

	"decorly/models"
	"decorly/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	ReviewSvc review.ReviewService
	Logger    *zap.Logger
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(reviewSvc review.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{ReviewSvc: reviewSvc, Logger: logger}
}

// AddReview handles POST /api/reviews.
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var input models.Review
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	created, err := h.ReviewSvc.AddReview(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListReviews handles GET /api/reviews.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.ReviewSvc.ListReviews(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListReviews failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ListServiceReviews handles GET /api/reviews/service/:serviceId.
func (h *ReviewHandler) ListServiceReviews(c *gin.Context) {
	serviceID := c.Param("serviceId")

	reviews, err := h.ReviewSvc.ListServiceReviews(c.Request.Context(), serviceID)
	if err != nil {
		h.Logger.Error("ListServiceReviews failed", zap.String("serviceId", serviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// DeleteReview handles DELETE /api/reviews/:id.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id := c.Param("id")

	if err := h.ReviewSvc.DeleteReview(c.Request.Context(), id); err != nil {
		h.Logger.Error("DeleteReview failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
