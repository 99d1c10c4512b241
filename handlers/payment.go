package handlers

import (
	"net/http"

	"trailhub/models"
	"trailhub/services/user"
	"trailhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes stored payment method management.
type PaymentHandler struct {
	UserService user.UserService
}

// NewPaymentHandler creates a new PaymentHandler instance.
func NewPaymentHandler(svc user.UserService) *PaymentHandler {
	return &PaymentHandler{UserService: svc}
}

// AttachPaymentMethodHandler handles POST /api/user/payment-methods.
func (h *PaymentHandler) AttachPaymentMethodHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.AttachPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method payload: " + err.Error()})
		return
	}
	info, err := h.UserService.AttachPaymentMethod(userID, req)
	if err != nil {
		utils.GetLogger().Error("attach payment method failed",
			zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, info)
}

// ListPaymentMethodsHandler handles GET /api/user/payment-methods.
func (h *PaymentHandler) ListPaymentMethodsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	methods, err := h.UserService.ListPaymentMethods(userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, methods)
}

// DetachPaymentMethodHandler handles DELETE /api/user/payment-methods/:id.
func (h *PaymentHandler) DetachPaymentMethodHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.DetachPaymentMethod(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment method removed"})
}

// SetDefaultPaymentHandler handles PUT /api/user/payment-methods/:id/default.
func (h *PaymentHandler) SetDefaultPaymentHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.SetDefaultPaymentMethod(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "default payment method updated"})
}
