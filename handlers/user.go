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

// UserHandler exposes profile, lessor settings and license endpoints.
type UserHandler struct {
	UserService user.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

func userError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("user request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// GetProfileHandler handles GET /api/user/profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler handles PUT /api/user/profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload: " + err.Error()})
		return
	}
	req.ID = userID
	usr, err := h.UserService.UpdateUser(req)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdatePasswordHandler handles PUT /api/user/password.
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid password payload: " + err.Error()})
		return
	}
	if err := h.UserService.UpdateUserPassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "current password is incorrect"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// DeleteAccountHandler handles DELETE /api/user.
func (h *UserHandler) DeleteAccountHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.DeleteUser(userID); err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// GetLessorSettingsHandler handles GET /api/user/lessor-settings.
func (h *UserHandler) GetLessorSettingsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	settings, err := h.UserService.GetLessorSettings(userID)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateLessorSettingsHandler handles PUT /api/user/lessor-settings.
func (h *UserHandler) UpdateLessorSettingsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var settings models.LessorSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload: " + err.Error()})
		return
	}
	updated, err := h.UserService.UpdateLessorSettings(userID, settings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SubmitLicenseHandler handles POST /api/user/license.
func (h *UserHandler) SubmitLicenseHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var license models.DriverLicense
	if err := c.ShouldBindJSON(&license); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid license payload: " + err.Error()})
		return
	}
	verified, err := h.UserService.SubmitLicense(userID, license)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			userError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, verified)
}
