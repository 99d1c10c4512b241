package handlers

import (
	"errors"
	"net/http"

	"trailhub/models"
	"trailhub/services/listing"
	"trailhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler exposes the sectioned listing-creation workflow.
type ListingHandler struct {
	ListingSvc listing.ListingService
}

// NewListingHandler creates a new ListingHandler instance.
func NewListingHandler(svc listing.ListingService) *ListingHandler {
	return &ListingHandler{ListingSvc: svc}
}

// listingError maps service errors onto HTTP status codes.
func listingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, listing.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "listing session not found"})
	case errors.Is(err, listing.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
	case errors.Is(err, listing.ErrNotSessionOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your session"})
	case errors.Is(err, listing.ErrUnknownSection):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown section"})
	case errors.Is(err, listing.ErrIncompleteSections):
		c.JSON(http.StatusConflict, gin.H{"error": "not all required sections are completed"})
	case errors.Is(err, listing.ErrTermsNotAccepted):
		c.JSON(http.StatusConflict, gin.H{"error": "terms must be accepted"})
	default:
		utils.GetLogger().Error("listing request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// InitiateSessionHandler handles POST /api/listing/session.
func (h *ListingHandler) InitiateSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	session, err := h.ListingSvc.InitiateSession(userID)
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// InitiateEditSessionHandler handles POST /api/listing/session/edit/:trailerId.
func (h *ListingHandler) InitiateEditSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	session, err := h.ListingSvc.InitiateEditSession(userID, c.Param("trailerId"))
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSessionHandler handles GET /api/listing/session/:sessionId.
func (h *ListingHandler) GetSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	session, err := h.ListingSvc.GetSession(c.Param("sessionId"), userID)
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSessionHandler handles DELETE /api/listing/session/:sessionId.
func (h *ListingHandler) CancelSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.ListingSvc.CancelSession(c.Param("sessionId"), userID); err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}

// UpdateFormHandler handles PUT /api/listing/session/:sessionId/form.
func (h *ListingHandler) UpdateFormHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var update models.FormUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form payload: " + err.Error()})
		return
	}
	session, err := h.ListingSvc.UpdateFormData(c.Param("sessionId"), userID, update.TrailerFormData, update.Legacy())
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ToggleSectionHandler handles POST /api/listing/session/:sessionId/toggle/:section.
func (h *ListingHandler) ToggleSectionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	section := models.FormSection(c.Param("section"))
	session, err := h.ListingSvc.ToggleSection(c.Param("sessionId"), userID, section)
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CompleteSectionHandler handles POST /api/listing/session/:sessionId/complete/:section.
func (h *ListingHandler) CompleteSectionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	section := models.FormSection(c.Param("section"))
	session, err := h.ListingSvc.CompleteSection(c.Param("sessionId"), userID, section)
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"valid":   session.Completed[section],
	})
}

// ConfirmListingHandler handles POST /api/listing/session/:sessionId/confirm.
func (h *ListingHandler) ConfirmListingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	trailer, err := h.ListingSvc.ConfirmListing(c.Param("sessionId"), userID)
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trailer)
}

// GetDraftsHandler handles GET /api/listing/drafts.
func (h *ListingHandler) GetDraftsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	drafts, err := h.ListingSvc.GetDrafts(userID)
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, drafts)
}

// GetDraftHandler handles GET /api/listing/drafts/:draftId.
func (h *ListingHandler) GetDraftHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	draft, err := h.ListingSvc.GetDraft(userID, c.Param("draftId"))
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// DeleteDraftHandler handles DELETE /api/listing/drafts/:draftId.
func (h *ListingHandler) DeleteDraftHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.ListingSvc.DeleteDraft(userID, c.Param("draftId")); err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft deleted"})
}
