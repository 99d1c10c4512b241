package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trailhub/config"
	"trailhub/database"
	rentalRepoPkg "trailhub/database/repository/rental"
	reviewRepoPkg "trailhub/database/repository/review"
	trailerRepoPkg "trailhub/database/repository/trailer"
	userRepoPkg "trailhub/database/repository/user"
	"trailhub/handlers"
	"trailhub/middleware"
	"trailhub/routes"
	"trailhub/services/intelligence"
	"trailhub/services/listing"
	"trailhub/services/notification"
	"trailhub/services/rental"
	"trailhub/services/review"
	"trailhub/services/trailer"
	"trailhub/services/user"
	"trailhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	trailerRepo := trailerRepoPkg.NewMongoTrailerRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	rentalRepo := rentalRepoPkg.NewMongoRentalRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	trailerService := &trailer.DefaultTrailerService{
		Repo:    trailerRepo,
		Storage: cloudinaryStorageService,
	}

	notificationService := notification.NewFCMNotificationService()

	rentalService := &rental.DefaultRentalService{
		Repo:     rentalRepo,
		Trailers: trailerRepo,
		Users:    userRepo,
		Notifier: notificationService,
	}

	reviewService := &review.DefaultReviewService{
		Repo:     reviewRepo,
		Rentals:  rentalRepo,
		Trailers: trailerRepo,
		Users:    userRepo,
	}

	sessionClient := utils.GetSessionCacheClient()
	sessionStore := listing.NewRedisSessionStore(sessionClient)
	draftStore := listing.NewRedisDraftStore(sessionClient)
	autoSaver := listing.NewAutoSaver(sessionStore, draftStore,
		time.Duration(config.AppConfig.DraftDebounceMs)*time.Millisecond)

	listingService := &listing.DefaultListingService{
		Sessions:   sessionStore,
		Drafts:     draftStore,
		TrailerSvc: trailerService,
		AutoSaver:  autoSaver,
	}

	geminiClient, err := intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Warnf("main: copy suggestions disabled: %v", err)
	}
	copywriterService := intelligence.NewGeminiCopywriterService(geminiClient)

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	paymentHandler := handlers.NewPaymentHandler(userService)
	listingHandler := handlers.NewListingHandler(listingService)
	trailerHandler := handlers.NewTrailerHandler(trailerService)
	rentalHandler := handlers.NewRentalHandler(rentalService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService)
	intelligenceHandler := handlers.NewIntelligenceHandler(copywriterService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterUserHandler:     authHandler.RegisterUserHandler,
		AuthenticateUserHandler: authHandler.AuthenticateUserHandler,
		LogoutHandler:           authHandler.LogoutHandler,

		// User endpoints.
		GetProfileHandler:           userHandler.GetProfileHandler,
		UpdateProfileHandler:        userHandler.UpdateProfileHandler,
		UpdatePasswordHandler:       userHandler.UpdatePasswordHandler,
		DeleteAccountHandler:        userHandler.DeleteAccountHandler,
		GetLessorSettingsHandler:    userHandler.GetLessorSettingsHandler,
		UpdateLessorSettingsHandler: userHandler.UpdateLessorSettingsHandler,
		SubmitLicenseHandler:        userHandler.SubmitLicenseHandler,

		// Payment endpoints.
		AttachPaymentMethodHandler: paymentHandler.AttachPaymentMethodHandler,
		ListPaymentMethodsHandler:  paymentHandler.ListPaymentMethodsHandler,
		DetachPaymentMethodHandler: paymentHandler.DetachPaymentMethodHandler,
		SetDefaultPaymentHandler:   paymentHandler.SetDefaultPaymentHandler,

		// Listing workflow endpoints.
		InitiateListingSession: listingHandler.InitiateSessionHandler,
		InitiateEditSession:    listingHandler.InitiateEditSessionHandler,
		GetListingSession:      listingHandler.GetSessionHandler,
		CancelListingSession:   listingHandler.CancelSessionHandler,
		UpdateListingForm:      listingHandler.UpdateFormHandler,
		ToggleListingSection:   listingHandler.ToggleSectionHandler,
		CompleteListingSection: listingHandler.CompleteSectionHandler,
		ConfirmListing:         listingHandler.ConfirmListingHandler,
		GetDraftsHandler:       listingHandler.GetDraftsHandler,
		GetDraftHandler:        listingHandler.GetDraftHandler,
		DeleteDraftHandler:     listingHandler.DeleteDraftHandler,

		// Trailer endpoints.
		GetTrailerHandler:      trailerHandler.GetTrailerHandler,
		SearchTrailersHandler:  trailerHandler.SearchTrailersHandler,
		GetMyTrailersHandler:   trailerHandler.GetMyTrailersHandler,
		SetAvailabilityHandler: trailerHandler.SetAvailabilityHandler,
		DeleteTrailerHandler:   trailerHandler.DeleteTrailerHandler,

		// Rental endpoints.
		RequestRentalHandler:   rentalHandler.RequestRentalHandler,
		GetRentalHandler:       rentalHandler.GetRentalHandler,
		GetMyRentalsHandler:    rentalHandler.GetMyRentalsHandler,
		GetOwnerRentalsHandler: rentalHandler.GetOwnerRentalsHandler,
		ApproveRentalHandler:   rentalHandler.ApproveRentalHandler,
		RejectRentalHandler:    rentalHandler.RejectRentalHandler,
		CancelRentalHandler:    rentalHandler.CancelRentalHandler,
		CompleteRentalHandler:  rentalHandler.CompleteRentalHandler,

		// Review endpoints.
		CreateReviewHandler:      reviewHandler.CreateReviewHandler,
		GetTrailerReviewsHandler: reviewHandler.GetTrailerReviewsHandler,
		GetUserReviewsHandler:    reviewHandler.GetUserReviewsHandler,

		// Upload endpoints.
		UploadTrailerImagesHandler: storageHandler.UploadTrailerImagesHandler,

		// Intelligence endpoints.
		SuggestListingCopyHandler: intelligenceHandler.SuggestListingCopyHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Create database indexes.
	for _, repo := range []any{trailerRepo, userRepo} {
		if indexed, ok := repo.(interface{ EnsureIndexes() error }); ok {
			if err := indexed.EnsureIndexes(); err != nil {
				logger.Sugar().Warnf("main: failed to ensure indexes: %v", err)
			}
		}
	}

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache":    utils.GetCacheClient(),
		"auth":     utils.GetAuthCacheClient(),
		"sessions": utils.GetSessionCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
	utils.SyncLogger()
}
