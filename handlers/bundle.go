package handlers

import (
	"net/http"

	userRepoPkg "trailhub/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for wiring.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc

	// User endpoints
	GetProfileHandler           gin.HandlerFunc
	UpdateProfileHandler        gin.HandlerFunc
	UpdatePasswordHandler       gin.HandlerFunc
	DeleteAccountHandler        gin.HandlerFunc
	GetLessorSettingsHandler    gin.HandlerFunc
	UpdateLessorSettingsHandler gin.HandlerFunc
	SubmitLicenseHandler        gin.HandlerFunc

	// Payment endpoints
	AttachPaymentMethodHandler gin.HandlerFunc
	ListPaymentMethodsHandler  gin.HandlerFunc
	DetachPaymentMethodHandler gin.HandlerFunc
	SetDefaultPaymentHandler   gin.HandlerFunc

	// Listing workflow endpoints
	InitiateListingSession gin.HandlerFunc
	InitiateEditSession    gin.HandlerFunc
	GetListingSession      gin.HandlerFunc
	CancelListingSession   gin.HandlerFunc
	UpdateListingForm      gin.HandlerFunc
	ToggleListingSection   gin.HandlerFunc
	CompleteListingSection gin.HandlerFunc
	ConfirmListing         gin.HandlerFunc
	GetDraftsHandler       gin.HandlerFunc
	GetDraftHandler        gin.HandlerFunc
	DeleteDraftHandler     gin.HandlerFunc

	// Trailer endpoints
	GetTrailerHandler      gin.HandlerFunc
	SearchTrailersHandler  gin.HandlerFunc
	GetMyTrailersHandler   gin.HandlerFunc
	SetAvailabilityHandler gin.HandlerFunc
	DeleteTrailerHandler   gin.HandlerFunc

	// Rental endpoints
	RequestRentalHandler   gin.HandlerFunc
	GetRentalHandler       gin.HandlerFunc
	GetMyRentalsHandler    gin.HandlerFunc
	GetOwnerRentalsHandler gin.HandlerFunc
	ApproveRentalHandler   gin.HandlerFunc
	RejectRentalHandler    gin.HandlerFunc
	CancelRentalHandler    gin.HandlerFunc
	CompleteRentalHandler  gin.HandlerFunc

	// Review endpoints
	CreateReviewHandler      gin.HandlerFunc
	GetTrailerReviewsHandler gin.HandlerFunc
	GetUserReviewsHandler    gin.HandlerFunc

	// Upload endpoints
	UploadTrailerImagesHandler gin.HandlerFunc

	// Intelligence endpoints
	SuggestListingCopyHandler gin.HandlerFunc
}

// currentUserID reads the authenticated user ID placed on the context by the
// auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return "", false
	}
	return idStr, true
}
