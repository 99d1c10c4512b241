package handlers

import (
	"errors"
	"net/http"

	"trailhub/models"
	"trailhub/services/rental"
	"trailhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RentalHandler exposes the booking flow.
type RentalHandler struct {
	RentalSvc rental.RentalService
}

// NewRentalHandler creates a new RentalHandler instance.
func NewRentalHandler(svc rental.RentalService) *RentalHandler {
	return &RentalHandler{RentalSvc: svc}
}

func rentalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rental.ErrRentalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "rental not found"})
	case errors.Is(err, rental.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your rental"})
	case errors.Is(err, rental.ErrTrailerUnavailable),
		errors.Is(err, rental.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, rental.ErrInvalidDateRange),
		errors.Is(err, rental.ErrOwnRental):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("rental request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// RequestRentalHandler handles POST /api/rentals.
func (h *RentalHandler) RequestRentalHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rental payload: " + err.Error()})
		return
	}
	r, err := h.RentalSvc.RequestRental(userID, req)
	if err != nil {
		rentalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// GetRentalHandler handles GET /api/rentals/:id.
func (h *RentalHandler) GetRentalHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	r, err := h.RentalSvc.GetRental(c.Param("id"), userID)
	if err != nil {
		rentalError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetMyRentalsHandler handles GET /api/rentals (rentals the user requested).
func (h *RentalHandler) GetMyRentalsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rentals, err := h.RentalSvc.GetByRenter(userID)
	if err != nil {
		rentalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// GetOwnerRentalsHandler handles GET /api/rentals/received.
func (h *RentalHandler) GetOwnerRentalsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rentals, err := h.RentalSvc.GetByOwner(userID)
	if err != nil {
		rentalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// ApproveRentalHandler handles POST /api/rentals/:id/approve.
func (h *RentalHandler) ApproveRentalHandler(c *gin.Context) {
	h.decision(c, h.RentalSvc.ApproveRental)
}

// RejectRentalHandler handles POST /api/rentals/:id/reject.
func (h *RentalHandler) RejectRentalHandler(c *gin.Context) {
	h.decision(c, h.RentalSvc.RejectRental)
}

// CancelRentalHandler handles POST /api/rentals/:id/cancel.
func (h *RentalHandler) CancelRentalHandler(c *gin.Context) {
	h.decision(c, h.RentalSvc.CancelRental)
}

// CompleteRentalHandler handles POST /api/rentals/:id/complete.
func (h *RentalHandler) CompleteRentalHandler(c *gin.Context) {
	h.decision(c, h.RentalSvc.CompleteRental)
}

func (h *RentalHandler) decision(c *gin.Context, fn func(rentalID, userID string) (*models.Rental, error)) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	r, err := fn(c.Param("id"), userID)
	if err != nil {
		rentalError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
