package routes

import (
	"net/http"
	"time"

	"trailhub/handlers"
	"trailhub/middleware"
	"trailhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers profile, lessor settings, license and payment
// method endpoints. All require authentication.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
		api.PUT("/password", hb.UpdatePasswordHandler)
		api.DELETE("", hb.DeleteAccountHandler)

		api.GET("/lessor-settings", hb.GetLessorSettingsHandler)
		api.PUT("/lessor-settings", hb.UpdateLessorSettingsHandler)
		api.POST("/license", hb.SubmitLicenseHandler)

		api.POST("/payment-methods", hb.AttachPaymentMethodHandler)
		api.GET("/payment-methods", hb.ListPaymentMethodsHandler)
		api.DELETE("/payment-methods/:id", hb.DetachPaymentMethodHandler)
		api.PUT("/payment-methods/:id/default", hb.SetDefaultPaymentHandler)
	}
}

// RegisterListingRoutes sets up the sectioned listing workflow endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listing")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/session", hb.InitiateListingSession)
		api.POST("/session/edit/:trailerId", hb.InitiateEditSession)
		api.GET("/session/:sessionId", hb.GetListingSession)
		api.DELETE("/session/:sessionId", hb.CancelListingSession)
		api.PUT("/session/:sessionId/form", hb.UpdateListingForm)
		api.POST("/session/:sessionId/toggle/:section", hb.ToggleListingSection)
		api.POST("/session/:sessionId/complete/:section", hb.CompleteListingSection)
		api.POST("/session/:sessionId/confirm", hb.ConfirmListing)

		api.GET("/drafts", hb.GetDraftsHandler)
		api.GET("/drafts/:draftId", hb.GetDraftHandler)
		api.DELETE("/drafts/:draftId", hb.DeleteDraftHandler)
	}
}

// RegisterTrailerRoutes registers public search plus owner management.
func RegisterTrailerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/trailers")
	{
		// Public endpoints.
		api.GET("", hb.SearchTrailersHandler)

		// Owner endpoints require authentication; "mine" is registered
		// before ":id" so Gin resolves it first.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.GET("/mine", hb.GetMyTrailersHandler)
		protected.PUT("/:id/availability", hb.SetAvailabilityHandler)
		protected.DELETE("/:id", hb.DeleteTrailerHandler)

		api.GET("/:id", hb.GetTrailerHandler)
	}
}

// RegisterRentalRoutes sets up the booking flow endpoints.
func RegisterRentalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rentals")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.RequestRentalHandler)
		api.GET("", hb.GetMyRentalsHandler)
		api.GET("/received", hb.GetOwnerRentalsHandler)
		api.GET("/:id", hb.GetRentalHandler)
		api.POST("/:id/approve", hb.ApproveRentalHandler)
		api.POST("/:id/reject", hb.RejectRentalHandler)
		api.POST("/:id/cancel", hb.CancelRentalHandler)
		api.POST("/:id/complete", hb.CompleteRentalHandler)
	}
}

// RegisterReviewRoutes sets up rental feedback endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/trailer/:trailerId", hb.GetTrailerReviewsHandler)
		api.GET("/user/:userId", hb.GetUserReviewsHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateReviewHandler)
	}
}

// RegisterUploadRoutes sets up media upload endpoints.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/upload")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/trailer-images", hb.UploadTrailerImagesHandler)
	}
}

// RegisterIntelligenceRoutes sets up AI-assisted endpoints.
func RegisterIntelligenceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/intelligence")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/suggest-copy", hb.SuggestListingCopyHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// background monitor's latest snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm TrailHub",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterTrailerRoutes(r, hb)
	RegisterRentalRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
	RegisterIntelligenceRoutes(r, hb)
	RegisterHealthRoute(r)
}
