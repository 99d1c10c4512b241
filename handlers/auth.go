package handlers

import (
	"errors"
	"net/http"

	"trailhub/models"
	"trailhub/services/user"
	"trailhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration and sign-in.
type AuthHandler struct {
	UserService user.UserService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserService: svc}
}

// RegisterUserHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterUserHandler(c *gin.Context) {
	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration payload: " + err.Error()})
		return
	}
	resp, err := h.UserService.RegisterUser(reg)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/auth/login.
func (h *AuthHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid login payload: " + err.Error()})
		return
	}
	resp, err := h.UserService.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.RevokeUserAuthToken(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
