package handlers

import (
	"errors"
	"net/http"

	"trailhub/models"
	"trailhub/services/review"
	"trailhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes rental feedback endpoints.
type ReviewHandler struct {
	ReviewSvc review.ReviewService
}

// NewReviewHandler creates a new ReviewHandler instance.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{ReviewSvc: svc}
}

// CreateReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review payload: " + err.Error()})
		return
	}
	r, err := h.ReviewSvc.CreateReview(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrRentalNotCompleted),
			errors.Is(err, review.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrRatingOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("create review failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, r)
}

// GetTrailerReviewsHandler handles GET /api/reviews/trailer/:trailerId.
func (h *ReviewHandler) GetTrailerReviewsHandler(c *gin.Context) {
	reviews, err := h.ReviewSvc.GetByTrailer(c.Param("trailerId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetUserReviewsHandler handles GET /api/reviews/user/:userId.
func (h *ReviewHandler) GetUserReviewsHandler(c *gin.Context) {
	reviews, err := h.ReviewSvc.GetByUser(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
