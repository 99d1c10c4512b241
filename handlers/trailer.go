package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trailhub/models"
	"trailhub/services/trailer"
	"trailhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TrailerHandler exposes published listings.
type TrailerHandler struct {
	TrailerSvc trailer.TrailerService
}

// NewTrailerHandler creates a new TrailerHandler instance.
func NewTrailerHandler(svc trailer.TrailerService) *TrailerHandler {
	return &TrailerHandler{TrailerSvc: svc}
}

func trailerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trailer.ErrTrailerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "trailer not found"})
	case errors.Is(err, trailer.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your trailer"})
	default:
		utils.GetLogger().Error("trailer request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// GetTrailerHandler handles GET /api/trailers/:id.
func (h *TrailerHandler) GetTrailerHandler(c *gin.Context) {
	t, err := h.TrailerSvc.GetTrailer(c.Param("id"))
	if err != nil {
		trailerError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// SearchTrailersHandler handles GET /api/trailers.
func (h *TrailerHandler) SearchTrailersHandler(c *gin.Context) {
	criteria := models.TrailerSearchCriteria{
		City: c.Query("city"),
		Type: c.Query("type"),
	}
	if v := c.Query("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MaxPrice = price
		}
	}
	if lat, lng := c.Query("lat"), c.Query("lng"); lat != "" && lng != "" {
		latF, latErr := strconv.ParseFloat(lat, 64)
		lngF, lngErr := strconv.ParseFloat(lng, 64)
		if latErr == nil && lngErr == nil {
			criteria.Latitude = latF
			criteria.Longitude = lngF
			if v := c.Query("maxDistance"); v != "" {
				if dist, err := strconv.ParseFloat(v, 64); err == nil {
					criteria.MaxDistance = dist
				}
			}
		}
	}

	results, err := h.TrailerSvc.Search(criteria)
	if err != nil {
		trailerError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetMyTrailersHandler handles GET /api/trailers/mine.
func (h *TrailerHandler) GetMyTrailersHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	trailers, err := h.TrailerSvc.GetByOwner(userID)
	if err != nil {
		trailerError(c, err)
		return
	}
	c.JSON(http.StatusOK, trailers)
}

// SetAvailabilityHandler handles PUT /api/trailers/:id/availability.
func (h *TrailerHandler) SetAvailabilityHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid availability payload: " + err.Error()})
		return
	}
	if err := h.TrailerSvc.SetAvailable(userID, c.Param("id"), *req.Available); err != nil {
		trailerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}

// DeleteTrailerHandler handles DELETE /api/trailers/:id.
func (h *TrailerHandler) DeleteTrailerHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.TrailerSvc.DeleteTrailer(userID, c.Param("id")); err != nil {
		trailerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trailer deleted"})
}
