package handlers

import (
	"net/http"

	"trailhub/models"
	"trailhub/services/intelligence"
	"trailhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntelligenceHandler exposes AI-assisted listing copy.
type IntelligenceHandler struct {
	Copywriter intelligence.CopywriterService
}

// NewIntelligenceHandler creates a new IntelligenceHandler instance.
func NewIntelligenceHandler(svc intelligence.CopywriterService) *IntelligenceHandler {
	return &IntelligenceHandler{Copywriter: svc}
}

// SuggestListingCopyHandler handles POST /api/intelligence/suggest-copy. It
// takes the current form snapshot and returns a generated title and
// description.
func (h *IntelligenceHandler) SuggestListingCopyHandler(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	var form models.TrailerFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form payload: " + err.Error()})
		return
	}
	suggestion, err := h.Copywriter.SuggestListingCopy(c, form)
	if err != nil {
		utils.GetLogger().Error("suggest listing copy failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate suggestion"})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
